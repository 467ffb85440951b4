package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/saranyasailakshmi/DIV-Tech/apperrors"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

// respondError maps the service error taxonomy onto the response envelope.
// Validation failures put the field-keyed map into message; everything else
// is a plain string. Unexpected errors surface their text with a 500.
func respondError(c *gin.Context, err error) {
	var (
		verr      *apperrors.ValidationError
		forbidden *apperrors.ForbiddenError
		notFound  *apperrors.NotFoundError
		conflict  *apperrors.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, utils.APIResponse(false, verr.Fields, nil))
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, utils.APIResponse(false, forbidden.Message, nil))
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, utils.APIResponse(false, notFound.Error(), nil))
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, utils.APIResponse(false, conflict.Message, nil))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, err.Error(), nil))
	case errors.Is(err, apperrors.ErrMissingToken):
		c.JSON(http.StatusBadRequest, utils.APIResponse(false, err.Error(), nil))
	case errors.Is(err, apperrors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, utils.APIResponse(false, err.Error(), nil))
	default:
		logrus.WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, utils.APIResponse(false, err.Error(), nil))
	}
}
