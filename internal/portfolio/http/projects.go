package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		storeFailure(c, "list projects", err, "Error fetching projects")
		return
	}
	response.OK(c, items)
}

func (h *Handler) listFeaturedProjects(c *gin.Context) {
	items, err := h.projects.ListFeatured(c.Request.Context())
	if err != nil {
		storeFailure(c, "list featured projects", err, "Error fetching featured projects")
		return
	}
	response.OK(c, items)
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, err := h.projects.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		storeFailure(c, "create project", err, "Error adding project")
		return
	}

	response.OKMessage(c, "Project added successfully", response.IDData{ID: id})
}
