package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/billingbricks/app/internal/httpx"
	"github.com/billingbricks/app/internal/ident"
	"github.com/billingbricks/app/internal/models"
	"github.com/billingbricks/app/internal/validation"
	"github.com/billingbricks/app/internal/workspace"
)

// ClientHandler owns the Clients screen: a local working collection seeded
// from the mock store at mount time. Mutations never reach the store.
type ClientHandler struct {
	Clients *workspace.Collection[models.Client]
}

func NewClientHandler(clients *workspace.Collection[models.Client]) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

type clientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

func (in clientRequest) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("email", in.Email, v)
	return v
}

// List: GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Clients.List()
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// Create: POST /clients
// New clients start with both money fields at zero; nothing else is derived.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in clientRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := in.validate(); !v.Empty() {
		httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v,
			httpx.Failure("Error", "Name and email are required fields."))
		return
	}
	c := models.Client{
		ID:      ident.NewID(ident.ClientPrefix, h.Clients.Has),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   in.Phone,
		Address: in.Address,
		Company: in.Company,
	}
	h.Clients.Prepend(c)
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"client":       c,
		"notification": httpx.Success("Client Created", "New client has been successfully added."),
	})
}

// Update: POST/PUT /clients/update?id=...
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	existing, ok := h.Clients.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var in clientRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := in.validate(); !v.Empty() {
		httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v,
			httpx.Failure("Error", "Name and email are required fields."))
		return
	}
	updated := existing
	updated.Name = strings.TrimSpace(in.Name)
	updated.Email = strings.TrimSpace(in.Email)
	updated.Phone = in.Phone
	updated.Address = in.Address
	updated.Company = in.Company
	h.Clients.Replace(updated)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"client":       updated,
		"notification": httpx.Success("Client Updated", "Client details have been saved."),
	})
}

// Delete: POST/DELETE /clients/delete?id=...&confirm=<client name>
// Deletion is irreversible, so it is gated behind a confirmation that names
// the target record.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	existing, ok := h.Clients.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if r.URL.Query().Get("confirm") != existing.Name {
		httpx.JSONError(w, http.StatusConflict, "confirmation_required", map[string]string{
			"prompt": "Delete client \"" + existing.Name + "\"? This cannot be undone.",
		})
		return
	}
	h.Clients.Remove(id)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"deleted":      id,
		"notification": httpx.Success("Client Deleted", "Client \""+existing.Name+"\" has been removed."),
	})
}
