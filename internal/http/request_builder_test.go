package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/middleware"
)

func newBuilderContext(t *testing.T, lang string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if lang != "" {
		c.Request.Header.Set(i18n.AcceptLanguageHeader, lang)
	}
	c.Set(string(middleware.RequestIDKey), "req-1")
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newBuilderContext(t, "")

	NewResponseBuilder(c).Success(http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[envelope[map[string]int]](t, w)
	assert.Equal(t, 1, resp.Data["n"])
	assert.Equal(t, "req-1", resp.RequestID)
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name            string
		lang            string
		write           func(*ResponseBuilder)
		expectedStatus  int
		expectedCode    string
		expectedMessage string
		expectedDetails map[string]string
	}{
		{
			name: "translated key",
			write: func(b *ResponseBuilder) {
				b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, errors.New("eof"))
			},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "locale from header",
			lang: "pt-BR,pt;q=0.9",
			write: func(b *ResponseBuilder) {
				b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, nil)
			},
			expectedStatus:  http.StatusGatewayTimeout,
			expectedCode:    dto.ErrCodeTimeout,
			expectedMessage: "Tempo de requisição esgotado",
		},
		{
			name: "details",
			write: func(b *ResponseBuilder) {
				b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidAction, map[string]string{"actions[0].type": "must be increment or decrement"}, nil)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: "Invalid cart action",
			expectedDetails: map[string]string{"actions[0].type": "must be increment or decrement"},
		},
		{
			name: "literal message",
			write: func(b *ResponseBuilder) {
				b.ErrorWithMessage(http.StatusBadGateway, "Some thing went wrong", nil)
			},
			expectedStatus:  http.StatusBadGateway,
			expectedCode:    dto.ErrCodeBadGateway,
			expectedMessage: "Some thing went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(t, tt.lang)

			tt.write(NewResponseBuilder(c))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())
			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, tt.expectedDetails, resp.Details)
			assert.Equal(t, "req-1", resp.RequestID)
		})
	}
}

func TestResponseBuilder_ErrorAttachesCause(t *testing.T) {
	c, _ := newBuilderContext(t, "")
	cause := errors.New("boom")

	NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, cause)

	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, cause)
}

type validatedBody struct {
	Name string `json:"name" binding:"required"`
}

func (b *validatedBody) Validate() error {
	if b.Name == "invalid" {
		return errors.New("name is reserved")
	}
	return nil
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantBind    bool
		wantInvalid bool
	}{
		{name: "valid", body: `{"name":"ok"}`},
		{name: "malformed", body: `{"name":`, wantBind: true},
		{name: "missing required", body: `{}`, wantBind: true},
		{name: "fails Validate", body: `{"name":"invalid"}`, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			req, bindErr, validateErr := BindAndValidate[validatedBody](c)

			assert.Equal(t, tt.wantBind, bindErr != nil)
			assert.Equal(t, tt.wantInvalid, validateErr != nil)
			if !tt.wantBind && !tt.wantInvalid {
				require.NotNil(t, req)
				assert.Equal(t, "ok", req.Name)
			} else {
				assert.Nil(t, req)
			}
		})
	}
}
