package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bankmatch/internal/api/dto"
	"bankmatch/internal/domain/matcher"
)

// MatchHandler serves single-query matching in both directions.
type MatchHandler struct {
	matcher *matcher.Matcher
}

// NewMatchHandler creates a new match handler around the engine.
func NewMatchHandler(m *matcher.Matcher) *MatchHandler {
	return &MatchHandler{matcher: m}
}

// FindAttachment handles POST /api/match/attachment.
func (h *MatchHandler) FindAttachment(c *gin.Context) {
	var req dto.MatchAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body: "+err.Error()))
		return
	}

	att, result := h.matcher.FindAttachment(req.Transaction, req.Attachments)
	if att == nil {
		c.JSON(http.StatusOK, dto.MatchAttachmentResponse{Matched: false})
		return
	}

	c.JSON(http.StatusOK, dto.MatchAttachmentResponse{
		Matched:    true,
		Attachment: att,
		Confidence: result.Confidence,
		MatchedBy:  result.MatchedBy,
	})
}

// FindTransaction handles POST /api/match/transaction.
func (h *MatchHandler) FindTransaction(c *gin.Context) {
	var req dto.MatchTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body: "+err.Error()))
		return
	}

	tx, result := h.matcher.FindTransaction(req.Attachment, req.Transactions)
	if tx == nil {
		c.JSON(http.StatusOK, dto.MatchTransactionResponse{Matched: false})
		return
	}

	c.JSON(http.StatusOK, dto.MatchTransactionResponse{
		Matched:     true,
		Transaction: tx,
		Confidence:  result.Confidence,
		MatchedBy:   result.MatchedBy,
		MatchedDate: result.MatchedDate,
	})
}
