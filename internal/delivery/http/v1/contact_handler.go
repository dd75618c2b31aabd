package v1

import (
	"net/http"

	"agency-contact-backend/internal/delivery/http/response"
	"agency-contact-backend/internal/domain"
	"agency-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	// MsgContactSent confirms a dispatched submission to the visitor
	MsgContactSent = "Vielen Dank! Ihre Nachricht wurde erfolgreich gesendet. Wir melden uns in Kürze bei Ihnen."
	// MsgInvalidRequest is returned when the body is not a JSON object of strings
	MsgInvalidRequest = "Ungültige Anfrage."

	maxContactBodyBytes = 64 << 10
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the submission, notifies the agency inbox and sends a confirmation to the visitor.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, apperror.KindBadRequest, MsgInvalidRequest, err))
		return
	}

	// Dispatch only returns AppErrors; ErrorHandler maps them to 400/500
	if _, err := h.contactUC.Dispatch(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, MsgContactSent, nil)
}
