package handlers

import (
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"base-util/internal/adapters/primary/http/dto"
	"base-util/internal/core/domain"
	"base-util/pkg/strutil"
)

func (h *Handler) SubString(c *gin.Context) {
	var req dto.SubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := strutil.Sub(req.Value, req.Start, req.End)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StringResult{Result: res})
}

func (h *Handler) PadString(c *gin.Context) {
	var req dto.PadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch := '0'
	if req.Char != "" {
		if utf8.RuneCountInString(req.Char) != 1 {
			mapError(c, domain.ErrInvalidPadChar)
			return
		}
		ch, _ = utf8.DecodeRuneInString(req.Char)
	}

	var res string
	switch req.Side {
	case "", "left":
		res = strutil.PadLeft(req.Value, ch, req.Length)
	case "right":
		res = strutil.PadRight(req.Value, ch, req.Length)
	default:
		mapError(c, domain.ErrInvalidPadSide)
		return
	}

	c.JSON(http.StatusOK, dto.StringResult{Result: res})
}

func (h *Handler) ChangeCase(c *gin.Context) {
	var req dto.CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fn func(rune) rune
	switch req.Mode {
	case "lower":
		fn = unicode.ToLower
	case "upper":
		fn = unicode.ToUpper
	default:
		mapError(c, domain.ErrInvalidCaseMode)
		return
	}

	idx := 0
	if req.Index != nil {
		idx = *req.Index
		if idx < 0 {
			idx += utf8.RuneCountInString(req.Value)
		}
	}

	res, err := strutil.ChangeCaseAt(req.Value, idx, fn)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StringResult{Result: res})
}

func (h *Handler) RepairUTF8(c *gin.Context) {
	var req dto.UTF8Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := strutil.ToUTF8(req.Value)
	if err != nil {
		mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StringResult{Result: res})
}

func (h *Handler) CheckStrings(c *gin.Context) {
	var req dto.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Max > 0 && req.Min > req.Max {
		mapError(c, domain.ErrInvalidLenRange)
		return
	}

	resp := dto.CheckResponse{
		HasEmpty: strutil.HasEmpty(req.Values...),
		HasBlank: strutil.HasBlank(req.Values...),
		InRange:  make([]bool, 0, len(req.Values)),
	}
	for _, v := range req.Values {
		inRange := !strutil.IsBelowLen(v, req.Min)
		if req.Max > 0 {
			inRange = strutil.IsLenInRange(v, req.Min, req.Max)
		}
		resp.InRange = append(resp.InRange, inRange)
	}

	c.JSON(http.StatusOK, resp)
}
