package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/visualenglish-backend/internal/http/response"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

const dbUnavailableMessage = "Database not available; edit kept in local storage"

type ContentEditHandler struct {
	log   *logger.Logger
	edits services.ContentEditService
}

func NewContentEditHandler(log *logger.Logger, edits services.ContentEditService) *ContentEditHandler {
	return &ContentEditHandler{log: log.With("handler", "ContentEditHandler"), edits: edits}
}

// GET /api/direct/content-edits/:bookId/:unitId
func (h *ContentEditHandler) List(c *gin.Context) {
	rows, err := h.edits.List(c.Request.Context(), c.Param("bookId"), c.Param("unitId"))
	if err != nil {
		h.log.Warn("list content edits failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "dbAvailable": h.edits.DBAvailable(), "edits": rows})
}

// POST /api/direct/content-edits
func (h *ContentEditHandler) Save(c *gin.Context) {
	var in services.SaveEditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.edits.Save(c.Request.Context(), in)
	if err != nil {
		h.log.Warn("save content edit failed", "error", err, "book_id", in.BookID, "unit_id", in.UnitID)
		response.RespondAPIError(c, err)
		return
	}
	if !res.DBAvailable {
		response.RespondOK(c, gin.H{"success": true, "dbAvailable": false, "message": dbUnavailableMessage})
		return
	}
	payload := gin.H{"success": true, "dbAvailable": true, "message": "Content edit saved"}
	if res.Edit != nil {
		payload["id"] = res.Edit.ID.String()
	}
	response.RespondOK(c, payload)
}

// DELETE /api/direct/content-edits/:bookId/:unitId/:materialId
func (h *ContentEditHandler) Delete(c *gin.Context) {
	res, err := h.edits.Delete(c.Request.Context(), c.Param("bookId"), c.Param("unitId"), c.Param("materialId"))
	if err != nil {
		h.log.Warn("delete content edit failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	msg := "Content edit removed"
	if !res.DBAvailable {
		msg = dbUnavailableMessage
	}
	response.RespondOK(c, gin.H{"success": true, "dbAvailable": res.DBAvailable, "message": msg})
}
