package http

import "github.com/gin-gonic/gin"

// Register attaches the portfolio routes to rg. admin guards the
// administrative endpoints.
func (h *Handler) Register(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/featured", h.listFeaturedProjects)
	rg.POST("/projects", admin, h.createProject)

	rg.GET("/testimonials", h.listTestimonials)
	rg.GET("/testimonials/featured", h.listFeaturedTestimonials)
	rg.POST("/testimonials", admin, h.createTestimonial)

	rg.POST("/contact", h.createContact)
	rg.GET("/contacts", admin, h.listContacts)
	rg.PATCH("/contacts/:id/status", admin, h.updateContactStatus)
}
