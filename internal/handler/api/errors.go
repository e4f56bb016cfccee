package api

import (
	"net/http"

	"hecho-core/internal/handler/httperr"
	"hecho-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, errs.ErrUnknownSequenceType),
		errs.Is(err, errs.ErrInvalidJobType),
		errs.Is(err, errs.ErrInvalidJobInput),
		errs.Is(err, errs.ErrInvalidNotification):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errs.Is(err, errs.ErrJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrSequenceUnavailable),
		errs.Is(err, errs.ErrStorageUnavailable),
		errs.Is(err, errs.ErrRoleLookupFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
