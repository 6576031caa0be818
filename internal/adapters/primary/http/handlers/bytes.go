package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"base-util/internal/adapters/primary/http/dto"
	"base-util/pkg/byteutil"
)

func (h *Handler) SubBytes(c *gin.Context) {
	var req dto.BytesSubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := byteutil.Sub(req.Data, req.Begin, req.Count)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BytesResult{Result: res})
}
