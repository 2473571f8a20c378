// FILE: toml-cfg/helper_test.go
package tomlcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSnakeCase tests Go identifier to TOML key conversion
func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BufferSize", "buffer_size"},
		{"WifiSSID", "wifi_ssid"},
		{"HTTPServer", "http_server"},
		{"Port", "port"},
		{"port", "port"},
		{"MaxHTTPConnections", "max_http_connections"},
		{"A", "a"},
		{"ID", "id"},
		{"Port8080", "port8080"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, snakeCase(tt.in))
		})
	}
}

// TestShoutySnake tests type name to variable name conversion
func TestShoutySnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Config", "CONFIG"},
		{"AppSettings", "APP_SETTINGS"},
		{"WifiConfig", "WIFI_CONFIG"},
		{"HTTPConfig", "HTTP_CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, shoutySnake(tt.in))
		})
	}
}

// TestPascalCase tests TOML key to Go identifier conversion
func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"buffer_size", "BufferSize"},
		{"wifi-ssid", "WifiSsid"},
		{"port", "Port"},
		{"a_b_c", "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, pascalCase(tt.in))
		})
	}
}

// TestIsValidKeySegment tests bare TOML key validation
func TestIsValidKeySegment(t *testing.T) {
	valid := []string{"lib-one", "buffer_size", "a", "A-1_b", "8080"}
	for _, s := range valid {
		assert.True(t, isValidKeySegment(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "lib.one", "with space", "quote\"", "ünïcode", "tab\t"}
	for _, s := range invalid {
		assert.False(t, isValidKeySegment(s), "expected %q to be invalid", s)
	}
}
