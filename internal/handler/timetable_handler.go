package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadsync/faculty-portal-api/internal/dto"
	"github.com/acadsync/faculty-portal-api/internal/ingest"
	"github.com/acadsync/faculty-portal-api/internal/middleware"
	"github.com/acadsync/faculty-portal-api/internal/service"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
	"github.com/acadsync/faculty-portal-api/pkg/response"
)

// TimetableHandler handles upload and timetable-wide endpoints.
type TimetableHandler struct {
	service *service.TimetableService
}

// NewTimetableHandler constructs a timetable handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Upload godoc
// @Summary Ingest an uploaded timetable document
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.UploadTimetableRequest true "Parsed timetable document"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/timetable/upload [post]
func (h *TimetableHandler) Upload(c *gin.Context) {
	var req dto.UploadTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	actor := "unknown"
	if claims := middleware.Claims(c); claims != nil {
		actor = claims.UserID
	}

	summary, err := h.service.Ingest(c.Request.Context(), ingest.Document{Classes: req.Classes}, actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// IngestionHistory godoc
// @Summary List recent ingestion audit records
// @Tags Timetable
// @Produce json
// @Param limit query int false "Maximum records to return"
// @Success 200 {object} response.Envelope
// @Router /admin/audit/ingestions [get]
func (h *TimetableHandler) IngestionHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be an integer"))
		return
	}

	entries, svcErr := h.service.IngestionHistory(c.Request.Context(), limit)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil, map[string]interface{}{"count": len(entries)})
}

// Status godoc
// @Summary Report whether a timetable has been loaded
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable/status [get]
func (h *TimetableHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Status(), nil)
}

// ListClasses godoc
// @Summary List ingested class schedules
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *TimetableHandler) ListClasses(c *gin.Context) {
	classes := h.service.ListClasses()
	response.JSON(c, http.StatusOK, classes, nil, map[string]interface{}{"count": len(classes)})
}
