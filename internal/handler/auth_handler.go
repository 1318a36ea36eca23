package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/service"
	appErrors "github.com/acadsync/faculty-portal-api/pkg/errors"
	"github.com/acadsync/faculty-portal-api/pkg/response"
)

// AuthHandler handles login endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate an administrator or faculty member
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.Login(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
