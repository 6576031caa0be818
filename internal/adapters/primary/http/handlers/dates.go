package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"base-util/internal/adapters/primary/http/dto"
	"base-util/pkg/dateutil"
)

func (h *Handler) CompareDates(c *gin.Context) {
	var req dto.DateCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := dateutil.CompareStrings(req.A, req.B, h.pattern(req.Pattern))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompareResponse{Result: res})
}

func (h *Handler) DateInRange(c *gin.Context) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := dateutil.IsStrInRange(req.Time, req.Start, req.End, h.pattern(req.Pattern))
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RangeResponse{InRange: ok})
}

func (h *Handler) NowInRange(c *gin.Context) {
	var req dto.NowRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pattern := h.pattern(req.Pattern)
	start, err := dateutil.Parse(req.Start, pattern)
	if err != nil {
		mapError(c, err)
		return
	}
	end, err := dateutil.Parse(req.End, pattern)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RangeResponse{InRange: h.checker.IsNowInRange(start, end)})
}

func (h *Handler) DateDiff(c *gin.Context) {
	var req dto.DateDiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	within := time.Duration(req.WithinMS) * time.Millisecond
	ok, err := dateutil.IsStrsDiffWithin(req.A, req.B, h.pattern(req.Pattern), within)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DiffResponse{Within: ok})
}
