package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/visualenglish-backend/internal/http/response"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

const maxMappingUpload = 16 << 20

type QAHandler struct {
	log      *logger.Logger
	mappings services.QAMappingService
	resolver services.QAResolveService
}

func NewQAHandler(log *logger.Logger, mappings services.QAMappingService, resolver services.QAResolveService) *QAHandler {
	return &QAHandler{
		log:      log.With("handler", "QAHandler"),
		mappings: mappings,
		resolver: resolver,
	}
}

// GET /api/direct/:bookId/:unitId/excel-qa
func (h *QAHandler) ListMapping(c *gin.Context) {
	entries, err := h.mappings.Entries(c.Request.Context(), c.Param("bookId"), c.Param("unitId"))
	if err != nil {
		h.log.Warn("list mapping failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "entries": entries})
}

// POST /api/direct/:bookId/:unitId/excel-qa/import
//
// A unitId of "all" imports book-wide rows.
func (h *QAHandler) ImportMapping(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMappingUpload)
	fh, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_multipart_form", fmt.Errorf("missing file: %w", err))
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_multipart_form", err)
		return
	}
	defer f.Close()

	unitID := c.Param("unitId")
	if unitID == "all" {
		unitID = ""
	}
	res, err := h.mappings.Import(c.Request.Context(), c.Param("bookId"), unitID, filepath.Base(fh.Filename), f)
	if err != nil {
		h.log.Warn("mapping import failed", "error", err, "file", fh.Filename)
		response.RespondAPIError(c, err)
		return
	}
	h.log.Info("mapping imported", "book_id", c.Param("bookId"), "unit_id", unitID, "imported", res.Imported, "skipped", res.Skipped)
	response.RespondOK(c, gin.H{"success": true, "imported": res.Imported, "skipped": res.Skipped})
}

// GET /api/direct/:bookId/:unitId/qa?filename=&materialId=
func (h *QAHandler) Resolve(c *gin.Context) {
	in := cascade.Input{
		BookID:     c.Param("bookId"),
		UnitID:     c.Param("unitId"),
		Filename:   c.Query("filename"),
		MaterialID: c.Query("materialId"),
	}
	out, err := h.resolver.Resolve(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"state":   out.State,
		"source":  out.Source,
		"result":  out.Result,
	})
}

