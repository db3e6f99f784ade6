package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubIDKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"sub", true},
		{"sub5", true},
		{"sub6", false},
		{"ref", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSubIDKey(tt.key))
		})
	}
}

func TestIsHTTPTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected bool
	}{
		{"https url", "https://track.example.com/pb?clickid={sub}", true},
		{"http url upper case", "HTTP://track.example.com/pb", true},
		{"pixel markup", `<img src="https://px.example.com/p?c={sub}" />`, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsHTTPTemplate(tt.template))
		})
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://track.example.com/pb?a=1"))
	assert.False(t, IsAbsoluteURL("https:///no-host"))
	assert.False(t, IsAbsoluteURL("ftp://example.com"))
	assert.False(t, IsAbsoluteURL("::not a url"))
}
