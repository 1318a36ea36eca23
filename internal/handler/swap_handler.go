package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadsync/faculty-portal-api/internal/dto"
	"github.com/acadsync/faculty-portal-api/internal/middleware"
	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/service"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
	"github.com/acadsync/faculty-portal-api/pkg/response"
)

// SwapHandler handles swap-request endpoints.
type SwapHandler struct {
	service *service.SwapService
}

// NewSwapHandler constructs a swap handler.
func NewSwapHandler(svc *service.SwapService) *SwapHandler {
	return &SwapHandler{service: svc}
}

// Create godoc
// @Summary Create a period-swap request
// @Tags Swaps
// @Accept json
// @Produce json
// @Param payload body dto.CreateSwapRequest true "Swap request"
// @Success 201 {object} response.Envelope
// @Router /swaps [post]
func (h *SwapHandler) Create(c *gin.Context) {
	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	// Faculty members may only file requests on their own behalf.
	if claims := middleware.Claims(c); claims != nil && claims.Role == models.RoleFaculty && claims.UserID != req.RequestingFacultyID {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "cannot create a swap request for another faculty"))
		return
	}

	created, err := h.service.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// List godoc
// @Summary List swap requests
// @Tags Swaps
// @Produce json
// @Param faculty_id query string false "Limit to requests involving this faculty"
// @Param status query string false "pending, accepted or rejected"
// @Success 200 {object} response.Envelope
// @Router /swaps [get]
func (h *SwapHandler) List(c *gin.Context) {
	facultyID := c.Query("faculty_id")
	status := models.SwapStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown status filter"))
		return
	}

	// Faculty callers see only their own requests.
	if claims := middleware.Claims(c); claims != nil && claims.Role == models.RoleFaculty {
		facultyID = claims.UserID
	}

	requests := h.service.ListForFaculty(facultyID, status)
	response.JSON(c, http.StatusOK, requests, nil, map[string]interface{}{"count": len(requests)})
}

// UpdateStatus godoc
// @Summary Accept or reject a swap request
// @Tags Swaps
// @Accept json
// @Produce json
// @Param id path string true "Swap request ID"
// @Param payload body dto.UpdateSwapStatusRequest true "Decision"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /swaps/{id}/status [patch]
func (h *SwapHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateSwapStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	id := c.Param("id")

	// Only the requested party or an admin may decide a swap.
	if claims := middleware.Claims(c); claims != nil && claims.Role == models.RoleFaculty {
		if existing := h.service.Get(id); existing != nil && existing.RequestedFacultyID != claims.UserID {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "only the requested faculty may decide this swap"))
			return
		}
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}
