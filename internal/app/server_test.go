//go:build !integration

package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/checkout-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name                 string
		cfg                  config.ServerConfig
		expectedWriteTimeout time.Duration
	}{
		{
			name:                 "write timeout follows request timeout",
			cfg:                  config.ServerConfig{Port: "8080", RequestTimeout: 10 * time.Second},
			expectedWriteTimeout: 15 * time.Second,
		},
		{
			name:                 "default request timeout",
			cfg:                  config.ServerConfig{Port: "8080"},
			expectedWriteTimeout: 35 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), tt.cfg)

			require.NotNil(t, server)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.expectedWriteTimeout, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, defaultShutdownTimeout, server.shutdownTimeout)
		})
	}
}

func TestServer_Serve_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(okHandler(), config.ServerConfig{Port: "0"})
	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Serve(ctx, ln)
	}()

	url := fmt.Sprintf("http://%s/", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
}

func TestServer_Run_WithError(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "invalid-port"})

	err := server.Run(context.Background())

	assert.Error(t, err)
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "0"})

	assert.NoError(t, server.Shutdown())
}
