package postback

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/money"
	"github.com/GlebRadaev/afftrack/pkg/validate"
)

// Placeholders returns the substitution values for an event. Order placeholders are
// only filled for sale events and stay blank otherwise.
func Placeholders(e *domain.FunnelEvent) map[string]string {
	values := map[string]string{
		"affiliate_id":   e.AffiliateID,
		"package_count":  strconv.Itoa(e.PackageCount),
		"order_id":       "",
		"amount":         "",
		"commission":     "",
		"transaction_id": "",
	}
	for _, key := range validate.SubIDKeys {
		values[key] = e.SubIDs[key]
	}

	if e.EventType == domain.EventSale {
		values["order_id"] = e.OrderID
		values["transaction_id"] = e.TransactionID
		if e.Amount != nil {
			values["amount"] = money.Format(*e.Amount)
		}
		if e.Commission != nil {
			values["commission"] = money.Format(*e.Commission)
		}
	}
	return values
}

// Render substitutes every {placeholder} in the template with its query-escaped value.
func Render(template string, e *domain.FunnelEvent) string {
	values := Placeholders(e)
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", url.QueryEscape(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
