package http

import (
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/response"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/gin-gonic/gin"
)

const (
	MsgContactRequired = "Full name, email, and message are required"
	MsgContactSent     = "Message sent successfully! I will get back to you within 24 hours."
	MsgInvalidStatus   = "Invalid status"
	MsgInvalidID       = "Invalid contact id"
	MsgStatusUpdated   = "Status updated successfully"
)

func (h *Handler) createContact(c *gin.Context) {
	var req createContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, MsgContactRequired)
		return
	}

	in := domain.NewContact{
		FullName: req.FullName,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if err := in.Validate(); err != nil {
		response.Fail(c, http.StatusBadRequest, MsgContactRequired)
		return
	}

	id, err := h.contacts.Create(c.Request.Context(), in)
	if err != nil {
		storeFailure(c, "create contact", err, "Error sending message. Please try again.")
		return
	}

	response.OKMessage(c, MsgContactSent, response.IDData{ID: id})
}

func (h *Handler) listContacts(c *gin.Context) {
	items, err := h.contacts.List(c.Request.Context())
	if err != nil {
		storeFailure(c, "list contacts", err, "Error fetching contacts")
		return
	}
	response.OK(c, items)
}

func (h *Handler) updateContactStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, MsgInvalidStatus)
		return
	}

	status, err := domain.ParseContactStatus(req.Status)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, MsgInvalidStatus)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, MsgInvalidID)
		return
	}

	if err := h.contacts.UpdateStatus(c.Request.Context(), id, status); err != nil {
		storeFailure(c, "update contact status", err, "Error updating status")
		return
	}

	response.OKMessage(c, MsgStatusUpdated, nil)
}
