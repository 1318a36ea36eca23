package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/acadsync/faculty-portal-api/internal/service"
	"github.com/acadsync/faculty-portal-api/pkg/response"
)

// FacultyHandler handles faculty roster and timetable endpoints.
type FacultyHandler struct {
	service *service.TimetableService
}

// NewFacultyHandler constructs a faculty handler.
func NewFacultyHandler(svc *service.TimetableService) *FacultyHandler {
	return &FacultyHandler{service: svc}
}

// List godoc
// @Summary List faculty records
// @Tags Faculties
// @Produce json
// @Param search query string false "Substring filter over name, email and subjects"
// @Success 200 {object} response.Envelope
// @Router /faculties [get]
func (h *FacultyHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	faculties := h.service.ListFaculties(c.Request.Context(), search)
	response.JSON(c, http.StatusOK, faculties, nil, map[string]interface{}{"count": len(faculties)})
}

// Get godoc
// @Summary Get faculty by id
// @Tags Faculties
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculties/{id} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	faculty, err := h.service.GetFaculty(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculty, nil)
}

// Timetable godoc
// @Summary Get a faculty member's weekly timetable
// @Tags Faculties
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculties/{id}/timetable [get]
func (h *FacultyHandler) Timetable(c *gin.Context) {
	slots, err := h.service.GetTimetable(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil, map[string]interface{}{"count": len(slots)})
}

// SearchTimetable godoc
// @Summary Search one faculty member's timetable
// @Tags Faculties
// @Produce json
// @Param id path string true "Faculty ID"
// @Param q query string true "Day name or substring"
// @Success 200 {object} response.Envelope
// @Router /faculties/{id}/timetable/search [get]
func (h *FacultyHandler) SearchTimetable(c *gin.Context) {
	results, err := h.service.SearchTimetable(c.Request.Context(), c.Param("id"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results, nil)
}

// ExportTimetable godoc
// @Summary Export a faculty member's timetable as PDF or CSV
// @Tags Faculties
// @Produce application/pdf
// @Param id path string true "Faculty ID"
// @Param format query string false "pdf (default) or csv"
// @Success 200 {file} binary
// @Router /faculties/{id}/timetable/export [get]
func (h *FacultyHandler) ExportTimetable(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", "pdf")

	payload, contentType, err := h.service.ExportTimetable(c.Request.Context(), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := "pdf"
	if format == "csv" {
		ext = "csv"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=timetable-%s.%s", id, ext))
	c.Data(http.StatusOK, contentType, payload)
}
