package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ftfltech/careers-api/internal/api/shared"
	"github.com/ftfltech/careers-api/internal/service"
)

// NewsletterHandler handles newsletter subscription and broadcast requests.
type NewsletterHandler struct {
	newsletter service.NewsletterService
	logger     *slog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletter service.NewsletterService, logger *slog.Logger) *NewsletterHandler {
	if newsletter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("newsletter service cannot be nil for NewsletterHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for NewsletterHandler")
	}

	return &NewsletterHandler{
		newsletter: newsletter,
		logger:     logger.With(slog.String("component", "newsletter_handler")),
	}
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if _, err := h.newsletter.Subscribe(r.Context(), req.Email); err != nil {
		override := ""
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			override = "Error subscribing to the newsletter"
		}
		HandleAPIError(w, r, err, override)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Subscribed successfully!"})
}

// Send handles POST /api/newsletter/send.
func (h *NewsletterHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendNewsletterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	info, err := h.newsletter.Broadcast(r.Context(), req.Subject, req.Message)
	if err != nil {
		override := ""
		switch {
		case errors.Is(err, service.ErrUpstream):
			override = "Error sending email"
		case MapErrorToStatusCode(err) == http.StatusInternalServerError:
			override = "Error fetching subscribers or sending email"
		}
		HandleAPIError(w, r, err, override)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewsletterSentResponse{
		Message: "Promotional email sent successfully!",
		Info:    info,
	})
}

// ListSubscribers handles GET /api/newsletter/subscribers.
func (h *NewsletterHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	emails, err := h.newsletter.ListSubscriberEmails(r.Context())
	if err != nil {
		override := ""
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			override = "Error fetching subscribers"
		}
		HandleAPIError(w, r, err, override)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emails)
}
