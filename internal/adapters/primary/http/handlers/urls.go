package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"base-util/internal/adapters/primary/http/dto"
	"base-util/pkg/httputil"
)

func (h *Handler) BuildQueryURL(c *gin.Context) {
	var req dto.URLQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := httputil.AddParamsToURL(req.URL, req.Params)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.URLQueryResponse{URL: res})
}

// Relay forwards a GET with its full query to the configured upstream and
// returns the upstream status, content type and body bytes unchanged.
func (h *Handler) Relay(c *gin.Context) {
	resp, err := h.relaySvc.Relay(c.Request.Context(), c.Param("path"), c.Request.URL.Query())
	if err != nil {
		log.WithError(err).Error("relay request failed")
		mapError(c, err)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(resp.Status, contentType, resp.Body)
}
