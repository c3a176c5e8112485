package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
	"github.com/oksasatya/digitalhub/pkg/response"
	"github.com/oksasatya/digitalhub/pkg/validation"
)

// fail maps a store or gateway error to an error envelope.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	var ve *application.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error[any](c, http.StatusBadRequest, "validation failed", ve.Details)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Error[any](c, http.StatusUnauthorized, "login required", nil)
	case errors.Is(err, repository.ErrAuthentication):
		response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "not allowed for this account", nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrImageStoreUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, "image uploads are disabled", nil)
	case errors.Is(err, repository.ErrTransport):
		var te *repository.TransportError
		detail := any(nil)
		if errors.As(err, &te) {
			detail = gin.H{"status": te.Status, "message": te.Message}
		}
		response.Error[any](c, http.StatusBadGateway, "backend request failed", detail)
	default:
		logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("unhandled error")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

// bind decodes the JSON body. Field rules are enforced by the store.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}
