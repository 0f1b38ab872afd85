package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and writes a 500
// envelope if the handler left the response empty.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		status := c.Writer.Status()
		log := logger.WithRequestID(requestID)
		event := log.Warn()
		if status >= http.StatusInternalServerError || !c.Writer.Written() {
			event = log.Error()
		}
		event.
			Str("error", c.Errors.Last().Error()).
			Int("errors", len(c.Errors)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
