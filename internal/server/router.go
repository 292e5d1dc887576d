package server

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/billingbricks/app/internal/config"
	"github.com/billingbricks/app/internal/handlers"
	"github.com/billingbricks/app/internal/httpx"
	"github.com/billingbricks/app/internal/models"
	"github.com/billingbricks/app/internal/obs"
	"github.com/billingbricks/app/internal/services"
	"github.com/billingbricks/app/internal/workspace"
)

// New constructs the root http.Handler with all routes and middlewares applied.
//
// Mounting copies the seed data into one working collection per screen. Those
// copies are the screens' private state for the life of the process; the store
// itself stays read-only and keeps feeding the dashboard.
func New(conn *gorm.DB, cfg config.Config) (http.Handler, error) {
	mux := http.NewServeMux()

	clients, products, invoices, err := mount(conn)
	if err != nil {
		return nil, err
	}

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := conn.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Dashboard
	dh := handlers.NewDashboardHandler(services.NewStatsService(conn))
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		dh.Show(w, r)
	})

	// Clients screen
	ch := handlers.NewClientHandler(clients)
	mux.HandleFunc("/clients", listCreate(ch.List, ch.Create))
	mux.HandleFunc("/clients/update", ch.Update)
	mux.HandleFunc("/clients/delete", ch.Delete)

	// Products screen
	ph := handlers.NewProductHandler(products, cfg.ExchangeRate)
	mux.HandleFunc("/products", listCreate(ph.List, ph.Create))
	mux.HandleFunc("/products/update", ph.Update)
	mux.HandleFunc("/products/delete", ph.Delete)

	// Invoices screen
	ih := handlers.NewInvoiceHandler(invoices, conn, services.NewBillingService())
	mux.HandleFunc("/invoices", listCreate(ih.List, ih.Create))
	mux.HandleFunc("/invoices/update", ih.Update)
	mux.HandleFunc("/invoices/delete", ih.Delete)

	return withRecover(withLogging(mux)), nil
}

// mount copies the seeded store into the per-screen collections.
func mount(conn *gorm.DB) (*workspace.Collection[models.Client], *workspace.Collection[models.Product], *workspace.Collection[models.Invoice], error) {
	var clients []models.Client
	if err := conn.Order("id").Find(&clients).Error; err != nil {
		return nil, nil, nil, err
	}
	var products []models.Product
	if err := conn.Order("id").Find(&products).Error; err != nil {
		return nil, nil, nil, err
	}
	var invoices []models.Invoice
	if err := conn.Preload("Client").Preload("Items").Order("id").Find(&invoices).Error; err != nil {
		return nil, nil, nil, err
	}
	return workspace.New(clients), workspace.New(products), workspace.New(invoices), nil
}

func listCreate(list, create http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		obs.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				obs.Logger.Error("panic recovered", "path", r.URL.Path, "panic", rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
