package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(PostbackDeliveries.WithLabelValues("sale", "success"))
	PostbackDeliveries.WithLabelValues("sale", "success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PostbackDeliveries.WithLabelValues("sale", "success")))
}

func TestHandler(t *testing.T) {
	EventsRecorded.WithLabelValues("page_view").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "afftrack_funnel_events_recorded_total")
}
