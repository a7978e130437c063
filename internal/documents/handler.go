package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legilight-backend/internal/extract"
	"legilight-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze/document", h.analyzeDocument)
	rg.POST("/analyze/upload", h.analyzeUpload)
	rg.POST("/question", h.question)
	rg.GET("/documents", h.list)
	rg.DELETE("/document/:analysisId", h.delete)
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	if !h.Svc.Ready() {
		respond.Error(c, http.StatusServiceUnavailable, "service_unavailable", "AI service not available", nil)
		return
	}

	var req analyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, totalSeconds, err := h.Svc.AnalyzeText(c.Request.Context(), req.DocumentText, req.DocumentName, req.AnalysisType)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toAnalysisResponse(rec, totalSeconds))
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	if !h.Svc.Ready() {
		respond.Error(c, http.StatusServiceUnavailable, "service_unavailable", "AI service not available", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	analysisType := c.PostForm("analysis_type")

	rec, totalSeconds, err := h.Svc.AnalyzeUpload(c.Request.Context(), fileHeader.Filename, data, analysisType)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toAnalysisResponse(rec, totalSeconds))
}

func (h *Handler) question(c *gin.Context) {
	if !h.Svc.Ready() {
		respond.Error(c, http.StatusServiceUnavailable, "service_unavailable", "AI service not available", nil)
		return
	}

	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	qa, err := h.Svc.Ask(c.Request.Context(), req.DocumentID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Question processing failed", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toQuestionResponse(qa))
}

func (h *Handler) list(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	summaries, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to retrieve documents", nil)
		return
	}
	if summaries == nil {
		summaries = []Summary{}
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"success":   true,
		"documents": summaries,
	})
}

func (h *Handler) delete(c *gin.Context) {
	analysisID := c.Param("analysisId")

	if err := h.Svc.Delete(c.Request.Context(), analysisID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to delete document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Document deleted successfully",
	})
}

func (h *Handler) respondAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, extract.ErrEmptyInput),
		errors.Is(err, extract.ErrExtractionFailed),
		errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Analysis failed", nil)
	}
}
