package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{
			name:     "localhost with port",
			input:    "localhost:8080",
			wantHost: "localhost",
			wantPort: 8080,
		},
		{
			name:     "IP with port",
			input:    "127.0.0.1:9090",
			wantHost: "127.0.0.1",
			wantPort: 9090,
		},
		{
			name:     "empty host",
			input:    ":8080",
			wantHost: "",
			wantPort: 8080,
		},
		{
			name:        "missing port",
			input:       "localhost",
			expectError: true,
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
		{
			name:        "bad host",
			input:       "not an ip:8080",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
			},
		},
		{
			name: "server address and dsn",
			args: []string{"-a", "localhost:8081", "-d", "notes.db"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
				assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
			},
		},
		{
			name: "client flags",
			args: []string{"-server-url", "http://localhost:8080", "-caller-id", "bob", "-refresh-interval", "1m"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerURL)
				assert.Equal(t, "bob", cfg.Adapter.CallerID)
				assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
			},
		},
		{
			name: "config path alias",
			args: []string{"-config", "cfg.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
			},
		},
		{
			name: "request timeout",
			args: []string{"-request-timeout", "45s"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()

			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}
