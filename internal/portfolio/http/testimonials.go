package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listTestimonials(c *gin.Context) {
	items, err := h.testimonials.List(c.Request.Context())
	if err != nil {
		storeFailure(c, "list testimonials", err, "Error fetching testimonials")
		return
	}
	response.OK(c, items)
}

func (h *Handler) listFeaturedTestimonials(c *gin.Context) {
	items, err := h.testimonials.ListFeatured(c.Request.Context())
	if err != nil {
		storeFailure(c, "list featured testimonials", err, "Error fetching featured testimonials")
		return
	}
	response.OK(c, items)
}

func (h *Handler) createTestimonial(c *gin.Context) {
	var req createTestimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, err := h.testimonials.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		storeFailure(c, "create testimonial", err, "Error adding testimonial")
		return
	}

	response.OKMessage(c, "Testimonial added successfully", response.IDData{ID: id})
}
