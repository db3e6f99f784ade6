package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]string{"invoice_id": "inv_1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "inv_1", body["invoice_id"])
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusUnprocessableEntity, "payment amount must be positive")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "payment amount must be positive", body.Message)
}

func TestRespondNoContentHasNoBody(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusNoContent, "nothing")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
