package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/billingbricks/app/internal/httpx"
	"github.com/billingbricks/app/internal/ident"
	"github.com/billingbricks/app/internal/models"
	"github.com/billingbricks/app/internal/money"
	"github.com/billingbricks/app/internal/services"
	"github.com/billingbricks/app/internal/validation"
	"github.com/billingbricks/app/internal/workspace"
)

// InvoiceHandler owns the Invoices screen. The form's client and product
// selectors read from the mock store (not from the other screens' working
// copies), so snapshots are taken from the seed data at selection time.
type InvoiceHandler struct {
	Invoices *workspace.Collection[models.Invoice]
	DB       *gorm.DB
	Billing  *services.BillingService
}

func NewInvoiceHandler(invoices *workspace.Collection[models.Invoice], conn *gorm.DB, billing *services.BillingService) *InvoiceHandler {
	return &InvoiceHandler{Invoices: invoices, DB: conn, Billing: billing}
}

type invoiceItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type invoiceRequest struct {
	ClientID string               `json:"clientId"`
	DueDate  string               `json:"dueDate"`
	Notes    string               `json:"notes"`
	Items    []invoiceItemRequest `json:"items"`
}

// List: GET /invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Invoices.List()
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// buildItems validates the requested lines and snapshots description and unit
// price from the selected products. Totals are stamped by the billing service.
func (h *InvoiceHandler) buildItems(reqs []invoiceItemRequest, v validation.Violations) []models.InvoiceItem {
	if len(reqs) == 0 {
		v["items"] = "required"
		return nil
	}
	items := make([]models.InvoiceItem, 0, len(reqs))
	for _, ir := range reqs {
		if ir.ProductID == "" {
			v["items"] = "product_selection_required"
			return nil
		}
		if ir.Quantity < 1 {
			v["items"] = "quantity_must_be_at_least_one"
			return nil
		}
		var product models.Product
		if err := h.DB.First(&product, "id = ?", ir.ProductID).Error; err != nil {
			v["items"] = "unknown_product"
			return nil
		}
		items = append(items, models.InvoiceItem{
			ID:          ident.NewItemID(),
			ProductID:   product.ID,
			Description: product.Description,
			Quantity:    ir.Quantity,
			UnitPrice:   product.Price,
		})
	}
	return items
}

// Create: POST /invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("clientId", in.ClientID, v)
	validation.Required("dueDate", in.DueDate, v)

	var client models.Client
	if in.ClientID != "" {
		if err := h.DB.First(&client, "id = ?", in.ClientID).Error; err != nil {
			v["clientId"] = "unknown_client"
		}
	}
	items := h.buildItems(in.Items, v)
	if !v.Empty() {
		httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v,
			httpx.Failure("Error", "Client, due date, and at least one product are required."))
		return
	}

	items, subtotal, tax, total := h.Billing.Reprice(items)
	now := time.Now()
	inv := models.Invoice{
		ID:            ident.NewID(ident.InvoicePrefix, h.Invoices.Has),
		ClientID:      client.ID,
		Client:        client,
		InvoiceNumber: ident.NewInvoiceNumber(now.Year(), h.hasInvoiceNumber),
		Date:          now.Format("2006-01-02"),
		DueDate:       in.DueDate,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Status:        models.StatusPending,
		Notes:         in.Notes,
	}
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}
	h.Invoices.Prepend(inv)
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"invoice":      inv,
		"notification": httpx.Success("Invoice Created", "Invoice "+inv.InvoiceNumber+" for "+money.Format(total)+" has been created."),
	})
}

// Update: POST/PUT /invoices/update?id=...
// Replaces items, due date, and notes, recomputing the totals. Status is
// free-standing state with no transitions; it is never modified here.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	existing, ok := h.Invoices.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var in invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("dueDate", in.DueDate, v)
	items := h.buildItems(in.Items, v)
	if !v.Empty() {
		httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v,
			httpx.Failure("Error", "Due date and at least one product are required."))
		return
	}

	items, subtotal, tax, total := h.Billing.Reprice(items)
	updated := existing
	updated.DueDate = in.DueDate
	updated.Notes = in.Notes
	updated.Items = items
	for i := range updated.Items {
		updated.Items[i].InvoiceID = updated.ID
	}
	updated.Subtotal = subtotal
	updated.Tax = tax
	updated.Total = total
	h.Invoices.Replace(updated)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"invoice":      updated,
		"notification": httpx.Success("Invoice Updated", "Invoice "+updated.InvoiceNumber+" has been saved."),
	})
}

// Delete: POST/DELETE /invoices/delete?id=...&confirm=<invoice number>
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	existing, ok := h.Invoices.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if r.URL.Query().Get("confirm") != existing.InvoiceNumber {
		httpx.JSONError(w, http.StatusConflict, "confirmation_required", map[string]string{
			"prompt": "Delete invoice " + existing.InvoiceNumber + "? This cannot be undone.",
		})
		return
	}
	h.Invoices.Remove(id)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"deleted":      id,
		"notification": httpx.Success("Invoice Deleted", "Invoice "+existing.InvoiceNumber+" has been removed."),
	})
}

func (h *InvoiceHandler) hasInvoiceNumber(n string) bool {
	for _, inv := range h.Invoices.List() {
		if inv.InvoiceNumber == n {
			return true
		}
	}
	return false
}
