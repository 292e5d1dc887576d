package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/billingbricks/app/internal/httpx"
	"github.com/billingbricks/app/internal/ident"
	"github.com/billingbricks/app/internal/models"
	"github.com/billingbricks/app/internal/money"
	"github.com/billingbricks/app/internal/validation"
	"github.com/billingbricks/app/internal/workspace"
)

// ProductHandler owns the Products screen. The exchange rate for the secondary
// display currency is injected so it is not duplicated across forms.
type ProductHandler struct {
	Products *workspace.Collection[models.Product]
	Rate     float64
}

func NewProductHandler(products *workspace.Collection[models.Product], rate float64) *ProductHandler {
	return &ProductHandler{Products: products, Rate: rate}
}

// Form fields arrive as strings and are coerced here, so a bad number is a
// validation failure rather than a decode error.
type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	InStock     string `json:"inStock"`
	Category    string `json:"category"`
}

type productRow struct {
	models.Product
	DisplayPrice float64 `json:"displayPrice"`
	LowStock     bool    `json:"lowStock"`
}

func (h *ProductHandler) row(p models.Product) productRow {
	return productRow{
		Product:      p,
		DisplayPrice: money.Round2(p.Price * h.Rate),
		LowStock:     p.LowStock(),
	}
}

// List: GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.Products.List()
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, h.row(p))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": rows, "total": len(rows)})
}

func (h *ProductHandler) parse(in productRequest) (models.Product, validation.Violations) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	price := validation.ParsePositiveFloat("price", in.Price, v)
	stock := validation.ParseNonNegativeInt("inStock", in.InStock, v)

	unit := models.Unit(in.Unit)
	if in.Unit == "" {
		unit = models.UnitYard
	} else if !unit.Valid() {
		v["unit"] = "unknown_unit"
	}
	category := models.Category(in.Category).Canonical()
	if !category.Valid() {
		v["category"] = "unknown_category"
	}
	return models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		SKU:         strings.TrimSpace(in.SKU),
		Price:       price,
		Unit:        unit,
		InStock:     stock,
		Category:    category,
	}, v
}

// Create: POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in productRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p, v := h.parse(in)
	if !v.Empty() {
		httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v, productFailure(v))
		return
	}
	p.ID = ident.NewID(ident.ProductPrefix, h.Products.Has)
	if p.SKU == "" {
		p.SKU = ident.NewSKU(p.Name, string(p.Category))
	}
	h.Products.Prepend(p)
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"product":      h.row(p),
		"notification": httpx.Success("Product Created", "New product has been successfully added."),
	})
}

// Update: POST/PUT /products/update?id=...
//
// The edit form shows the price in the display currency (price * rate); on
// save the entered value is divided back by the same rate to recover the
// canonical stored price. Round trips are lossy only to floating point.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	existing, ok := h.Products.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var in struct {
		productRequest
		DisplayPrice string `json:"displayPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	// The edit form submits displayPrice; a caller may also supply the
	// canonical price directly.
	if in.Price == "" && in.DisplayPrice != "" {
		v := validation.Violations{}
		display := validation.ParsePositiveFloat("displayPrice", in.DisplayPrice, v)
		if !v.Empty() {
			httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v, productFailure(v))
			return
		}
		in.Price = strconv.FormatFloat(display/h.Rate, 'f', -1, 64)
	}
	p, v := h.parse(in.productRequest)
	if !v.Empty() {
		httpx.JSONErrorNotify(w, http.StatusBadRequest, "validation_failed", v, productFailure(v))
		return
	}
	h.applyUpdate(w, existing, p)
}

func (h *ProductHandler) applyUpdate(w http.ResponseWriter, existing, incoming models.Product) {
	updated := incoming
	updated.ID = existing.ID
	if updated.SKU == "" {
		updated.SKU = existing.SKU
	}
	h.Products.Replace(updated)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"product":      h.row(updated),
		"notification": httpx.Success("Product Updated", "Product details have been saved."),
	})
}

// Delete: POST/DELETE /products/delete?id=...&confirm=<product name>
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := r.URL.Query().Get("id")
	existing, ok := h.Products.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if r.URL.Query().Get("confirm") != existing.Name {
		httpx.JSONError(w, http.StatusConflict, "confirmation_required", map[string]string{
			"prompt": "Delete product \"" + existing.Name + "\"? This cannot be undone.",
		})
		return
	}
	h.Products.Remove(id)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"deleted":      id,
		"notification": httpx.Success("Product Deleted", "Product \""+existing.Name+"\" has been removed."),
	})
}

func productFailure(v validation.Violations) httpx.Notification {
	if reason, ok := v["price"]; ok && reason != "required" {
		return httpx.Failure("Error", "Price must be a positive number.")
	}
	if _, ok := v["displayPrice"]; ok {
		return httpx.Failure("Error", "Price must be a positive number.")
	}
	if reason, ok := v["inStock"]; ok && reason != "required" {
		return httpx.Failure("Error", "Stock quantity must be a non-negative integer.")
	}
	return httpx.Failure("Error", "Name, price, and stock quantity are required fields.")
}
