package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevHost(t *testing.T) {
	assert.True(t, IsDevHost("localhost:3001"))
	assert.True(t, IsDevHost("127.0.0.1:8080"))
	assert.False(t, IsDevHost("og.colorant-picker.pl4rd.com"))
}

func TestRequestScheme(t *testing.T) {
	assert.Equal(t, "http", RequestScheme("localhost:3001"))
	assert.Equal(t, "https", RequestScheme("og.example.com"))
}

func TestRequestHost(t *testing.T) {
	req := httptest.NewRequest("GET", "/og", nil)
	req.Host = ""
	assert.Equal(t, "localhost", RequestHost(req))

	req.Host = "og.example.com"
	assert.Equal(t, "og.example.com", RequestHost(req))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "abc", Preview("abc", 5))
	assert.Equal(t, "ab...", Preview("abcdef", 2))
	assert.Equal(t, "abcdef", Preview("abcdef", 6))
	assert.Equal(t, "カラ...", Preview("カララント", 2))
	assert.Equal(t, "🎨...", Preview("🎨🎨", 1))
}
