package favorg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"HTTPS://WWW.Example.COM/Path/":    "https://example.com/Path",
		"http://example.com:80/":           "http://example.com",
		"https://example.com:443":          "https://example.com",
		"https://example.com/page#section": "https://example.com/page",
		"https://example.com/page?q=1&b=2": "https://example.com/page?q=1&b=2",
		"http://www.example.com":           "http://example.com",
		"https://example.com:8080/admin/":  "https://example.com:8080/admin",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeURL(input), "input %q", input)
	}
}

func TestNormalizeURLIdempotent(t *testing.T) {
	inputs := []string{
		"HTTPS://WWW.Example.COM/Path/",
		"http://localhost:3000/app#main",
		"https://example.com/page?q=1",
	}
	for _, input := range inputs {
		once := NormalizeURL(input)
		assert.Equal(t, once, NormalizeURL(once))
	}
}

func TestIsLocalhostURL(t *testing.T) {
	assert.True(t, IsLocalhostURL("http://localhost:3000"))
	assert.True(t, IsLocalhostURL("http://127.0.0.1/admin"))
	assert.True(t, IsLocalhostURL("http://[::1]:8080"))
	assert.False(t, IsLocalhostURL("https://example.com"))
	assert.False(t, IsLocalhostURL("https://localhost.example.com"))
}
