package api

import (
	"log/slog"
	"net/http"

	"github.com/ftfltech/careers-api/internal/api/shared"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/service"
)

const contactSubmittedMessage = "Thank You For Enquiring At FTFL Technologies... We will Get Back To You Soon"

// ContactHandler handles contact-form lead requests.
type ContactHandler struct {
	contacts service.ContactService
	logger   *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts service.ContactService, logger *slog.Logger) *ContactHandler {
	if contacts == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("contact service cannot be nil for ContactHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ContactHandler")
	}

	return &ContactHandler{
		contacts: contacts,
		logger:   logger.With(slog.String("component", "contact_handler")),
	}
}

// Submit handles POST /api/contact/submit.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	contact, err := h.contacts.Submit(r.Context(), req.ToDetails())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ContactCreatedResponse{
		Message: contactSubmittedMessage,
		Contact: contact,
	})
}

// List handles GET /api/contact/.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contacts)
}

// Get handles GET /api/contact/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", "Contact not found")
	if !ok {
		return
	}

	contact, err := h.contacts.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
}

// UpdateStatus handles PATCH /api/contact/{id}. Marking a lead non-converted
// deletes it, so the response is a confirmation instead of the contact.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathUUID(w, r, "id", "Contact not found")
	if !ok {
		return
	}

	var req ContactStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	contact, deleted, err := h.contacts.UpdateStatus(r.Context(), id, req.ToStatusUpdate())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if deleted {
		log.Debug("lead removed by status change", slog.String("contact_id", id.String()))
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
}

// Delete handles DELETE /api/contact/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", "Contact not found")
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Contact deleted successfully"})
}
