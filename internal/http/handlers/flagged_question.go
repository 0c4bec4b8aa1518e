package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/visualenglish-backend/internal/http/response"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

type FlaggedQuestionHandler struct {
	log   *logger.Logger
	flags services.FlaggedQuestionService
}

func NewFlaggedQuestionHandler(log *logger.Logger, flags services.FlaggedQuestionService) *FlaggedQuestionHandler {
	return &FlaggedQuestionHandler{log: log.With("handler", "FlaggedQuestionHandler"), flags: flags}
}

// POST /api/flagged-questions
func (h *FlaggedQuestionHandler) Create(c *gin.Context) {
	var in services.FlagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	flag, err := h.flags.Flag(c.Request.Context(), in)
	if err != nil {
		h.log.Warn("flag question failed", "error", err, "book_id", in.BookID, "material_id", in.MaterialID)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "flaggedQuestion": flag})
}

// GET /api/direct/flagged-questions?status=
func (h *FlaggedQuestionHandler) List(c *gin.Context) {
	flags, err := h.flags.List(c.Request.Context(), c.DefaultQuery("status", "all"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "flaggedQuestions": flags})
}

type reviewRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes"`
}

// PATCH /api/direct/flagged-questions/:id
func (h *FlaggedQuestionHandler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid id %q", c.Param("id")))
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	flag, err := h.flags.Review(c.Request.Context(), id, req.Status, req.ReviewNotes)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "flaggedQuestion": flag})
}
