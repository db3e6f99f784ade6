package validate

import (
	"net/url"
	"strings"
)

// SubIDKeys lists the sub-identifier keys carried by an attribution, in placeholder order.
var SubIDKeys = []string{"sub", "sub2", "sub3", "sub4", "sub5"}

func IsSubIDKey(key string) bool {
	for _, k := range SubIDKeys {
		if k == key {
			return true
		}
	}
	return false
}

// IsHTTPTemplate reports whether a postback template is delivered as an HTTP GET
// rather than rendered as literal pixel markup.
func IsHTTPTemplate(template string) bool {
	t := strings.ToLower(strings.TrimSpace(template))
	return strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://")
}

// IsAbsoluteURL checks a rendered postback URL before it is requested.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
