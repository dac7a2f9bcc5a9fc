package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires the contact endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the contact route to the router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/contact", h.submit)
}

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

func (h *Handler) submit(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name, a valid email address and a message are required")
		return
	}

	err := h.Svc.Submit(c.Request.Context(), form.Name, form.Email, form.Message)
	switch {
	case err == nil:
		respond.OK(c, gin.H{"message": "Thank you for your message! I'll get back to you soon."})
	case errors.Is(err, ErrStoreUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", "Database connection is not available.")
	case errors.Is(err, mailer.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "configuration_error", "Server email configuration is incomplete.")
	case errors.Is(err, mailer.ErrDelivery):
		respond.Error(c, http.StatusBadGateway, "email_error", "There was an error with the email service.")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "An unexpected server error occurred.")
	}
}
