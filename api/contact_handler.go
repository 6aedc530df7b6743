package api

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxContactBodyBytes = 64 * 1024

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	sender    services.ContactSender
	timeout   time.Duration
}

func newContactHandler(sender services.ContactSender, timeout time.Duration) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sender:    sender,
		timeout:   timeout,
	}
}

// submitContact validates and delivers a contact form
// @Summary Submit contact form
// @Description Validates the form in the request locale and forwards it to the configured sender
// @Tags Contact
// @Accept json
// @Produce json
// @Param locale path string true "Locale (en or ar)"
// @Param form body services.ContactForm true "Contact form"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} ValidationErrorResponse "Bad Request - Invalid fields"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Delivery failed"
// @Router /api/{locale}/contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := ctxGetLocale(r.Context())

		if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(r.Header.Get("Content-Type"), []string{"application/json"}))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
		var form services.ContactForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxContactBodyBytes))
				return
			}
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := form.Validate(locale); err != nil {
			h.responder.WriteValidationErrors(w, err)
			return
		}

		ctx := r.Context()
		if h.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.timeout)
			defer cancel()
		}

		msg := services.ContactMessage{ContactForm: form.Normalize(), Locale: locale}
		if err := h.sender.Send(ctx, msg); err != nil {
			h.logger.Error().Err(err).Str("email", msg.Email).Msg("contact delivery failed")
			apiErr := errs.NewUpstreamError("email", err)
			apiErr.Details = i18n.Printer(locale).Sprintf(i18n.MsgContactFailed)
			h.responder.WriteError(w, apiErr)
			return
		}

		h.responder.WriteJSON(w, ContactResponse{
			Status:  "sent",
			Message: i18n.Printer(locale).Sprintf(i18n.MsgContactSent),
		})
	}
}
