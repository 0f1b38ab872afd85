package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		path             string
		acceptEncoding   string
		expectCompressed bool
	}{
		{name: "gzip accepted", path: "/api/products", acceptEncoding: "gzip", expectCompressed: true},
		{name: "gzip among others", path: "/api/products", acceptEncoding: "gzip, deflate", expectCompressed: true},
		{name: "no accept-encoding", path: "/api/products"},
		{name: "metrics excluded", path: "/metrics", acceptEncoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression())
			handler := func(c *gin.Context) {
				c.String(http.StatusOK, "test response")
			}
			router.GET("/api/products", handler)
			router.GET("/metrics", handler)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			if !tt.expectCompressed {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, "test response", w.Body.String())
				return
			}

			assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			zr, err := gzip.NewReader(w.Body)
			require.NoError(t, err)
			body, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, "test response", string(body))
		})
	}
}
