package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robokitlab/catalog-api/internal/dto"
	"github.com/robokitlab/catalog-api/internal/service"
	"github.com/robokitlab/catalog-api/pkg/response"
)

type LessonHandler struct {
	service service.LessonService
}

func NewLessonHandler(service service.LessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

func (h *LessonHandler) ListPublic(c *gin.Context) {
	lessons, err := h.service.List(c.Request.Context(), dto.ResourceFilter{
		Search:        c.Query("search"),
		PublishedOnly: true,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": lessons})
}

func (h *LessonHandler) GetPublicBySlug(c *gin.Context) {
	lesson, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) ListAdmin(c *gin.Context) {
	lessons, err := h.service.List(c.Request.Context(), dto.ResourceFilter{
		Search: c.Query("search"),
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": lessons})
}

func (h *LessonHandler) GetAdminByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	lesson, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	productIDs, err := h.service.LinkedProductIDs(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson, "product_ids": productIDs})
}

func (h *LessonHandler) Save(c *gin.Context) {
	var input dto.LessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.service.Save(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lesson saved successfully", "id": lesson.ID, "lesson": lesson})
}

func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lesson deleted successfully"})
}
