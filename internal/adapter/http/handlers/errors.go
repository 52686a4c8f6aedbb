package handlers

import (
	"errors"
	"net/http"

	"akc_operations/internal/adapter/persistence/tabular"
	"akc_operations/internal/domain/statemachine"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase"
	"akc_operations/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapError converts a use case failure into the rendered AppError. Client
// mistakes keep their message; infrastructure failures are hidden behind a
// generic one and logged by respondError.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return pkg.NewDomainError("UNSUPPORTED_FILE_TYPE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainError("FILE_TOO_LARGE", err.Error(), err, http.StatusRequestEntityTooLarge)
	case errors.Is(err, statemachine.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, statemachine.ErrUnknownStatus):
		return pkg.NewDomainError("UNKNOWN_STATUS", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrModuleAccessDenied):
		return pkg.NewDomainError("MODULE_ACCESS_DENIED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, tabular.ErrTableNotFound):
		return pkg.NewDomainError("SHEET_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, tabular.ErrSchema):
		return pkg.NewDomainError("SCHEMA_MISMATCH", "Storage schema mismatch", err, http.StatusInternalServerError)
	case errors.Is(err, statemachine.ErrUnknownEntityType):
		return pkg.NewDomainError("UNKNOWN_ENTITY_TYPE", "Unsupported entity type", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrExternalService):
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", "An external service failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, component string, err error) {
	appErr := mapError(err)
	logger := logging.Component(c.Request.Context(), component, "handler")
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("code", appErr.Code).Msg("request failed")
	} else {
		logger.Warn().Err(err).Str("code", appErr.Code).Msg("request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidRequest(c *gin.Context) {
	c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}
