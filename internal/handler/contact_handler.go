package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/pkg/response"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var input dto.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Submit(c.Request.Context(), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "message sent successfully"})
}

func (h *ContactHandler) List(c *gin.Context) {
	submissions, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": submissions})
}
