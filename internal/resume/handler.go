package resume

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires the resume-request endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the resume route to the router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/send-resume", h.sendResume)
}

type sendResumeForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required,email"`
}

func (h *Handler) sendResume(c *gin.Context) {
	var form sendResumeForm
	if err := c.ShouldBind(&form); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name and a valid email address are required")
		return
	}

	err := h.Svc.Request(c.Request.Context(), form.Name, form.Email)
	switch {
	case err == nil:
		respond.OK(c, gin.H{"message": "Resume sent successfully!"})
	case errors.Is(err, ErrStoreUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", "Database connection is not available.")
	case errors.Is(err, mailer.ErrAttachmentNotFound):
		respond.Error(c, http.StatusInternalServerError, "configuration_error", "Server configuration error: the resume file could not be found.")
	case errors.Is(err, mailer.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "configuration_error", "Server email configuration is incomplete.")
	case errors.Is(err, mailer.ErrDelivery):
		respond.Error(c, http.StatusBadGateway, "email_error", "There was an error with the email service. Please try again later.")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "An unexpected server error occurred.")
	}
}
