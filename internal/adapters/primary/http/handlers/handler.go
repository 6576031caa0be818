package handlers

import (
	"base-util/internal/core/services"
	"base-util/pkg/dateutil"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	relaySvc    *services.RelayService
	checker     *dateutil.Checker
	datePattern string
}

// New builds the handler set. An empty datePattern selects
// dateutil.DefaultPattern and a nil checker uses the wall clock.
func New(relaySvc *services.RelayService, checker *dateutil.Checker, datePattern string) *Handler {
	if datePattern == "" {
		datePattern = dateutil.DefaultPattern
	}
	if checker == nil {
		checker = dateutil.NewChecker(nil)
	}
	return &Handler{
		relaySvc:    relaySvc,
		checker:     checker,
		datePattern: datePattern,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Strings
	r.POST("/strings/sub", h.SubString)
	r.POST("/strings/pad", h.PadString)
	r.POST("/strings/case", h.ChangeCase)
	r.POST("/strings/utf8", h.RepairUTF8)
	r.POST("/strings/check", h.CheckStrings)

	// Dates
	r.POST("/dates/compare", h.CompareDates)
	r.POST("/dates/range", h.DateInRange)
	r.POST("/dates/now", h.NowInRange)
	r.POST("/dates/diff", h.DateDiff)

	// Bytes
	r.POST("/bytes/sub", h.SubBytes)

	// URLs and relay
	r.POST("/urls/query", h.BuildQueryURL)
	r.GET("/relay/*path", h.Relay)
}

func (h *Handler) pattern(p string) string {
	if p == "" {
		return h.datePattern
	}
	return p
}
