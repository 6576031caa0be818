package handlers

import (
	"errors"
	"net/http"

	"base-util/internal/core/domain"
	"base-util/pkg/byteutil"
	"base-util/pkg/dateutil"
	"base-util/pkg/httputil"
	"base-util/pkg/strutil"

	"github.com/gin-gonic/gin"
)

func mapError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, strutil.ErrIndexOutOfRange),
		errors.Is(err, strutil.ErrEncoding),
		errors.Is(err, dateutil.ErrParse),
		errors.Is(err, dateutil.ErrUnsupportedPattern),
		errors.Is(err, byteutil.ErrOutOfRange),
		errors.Is(err, httputil.ErrEmptyParamKey),
		errors.Is(err, domain.ErrInvalidPadChar),
		errors.Is(err, domain.ErrInvalidPadSide),
		errors.Is(err, domain.ErrInvalidCaseMode),
		errors.Is(err, domain.ErrInvalidLenRange),
		errors.Is(err, domain.ErrInvalidPath):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, domain.ErrUpstreamNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": domain.ErrUpstreamUnavailable.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
