package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/pkg/response"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (h *AdminHandler) InviteAdmin(c *gin.Context) {
	var input dto.InviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tempPassword, err := h.service.InviteAdmin(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "admin invited successfully",
		"user":          user,
		"temp_password": tempPassword,
	})
}

func (h *AdminHandler) PromoteByEmail(c *gin.Context) {
	var input dto.PromoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.PromoteByEmail(c.Request.Context(), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user promoted to admin"})
}
