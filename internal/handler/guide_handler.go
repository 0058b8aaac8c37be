package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/pkg/response"
)

type GuideHandler struct {
	service service.GuideService
}

func NewGuideHandler(service service.GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

func (h *GuideHandler) ListPublic(c *gin.Context) {
	guides, err := h.service.List(c.Request.Context(), dto.ResourceFilter{
		Search:        c.Query("search"),
		PublishedOnly: true,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": guides})
}

func (h *GuideHandler) GetPublicBySlug(c *gin.Context) {
	guide, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (h *GuideHandler) ListAdmin(c *gin.Context) {
	guides, err := h.service.List(c.Request.Context(), dto.ResourceFilter{
		Search: c.Query("search"),
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": guides})
}

func (h *GuideHandler) GetAdminByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guide id"})
		return
	}

	guide, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	productIDs, err := h.service.LinkedProductIDs(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"guide": guide, "product_ids": productIDs})
}

func (h *GuideHandler) Save(c *gin.Context) {
	var input dto.GuideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guide, err := h.service.Save(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "guide saved successfully", "id": guide.ID, "guide": guide})
}

func (h *GuideHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guide id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "guide deleted successfully"})
}
