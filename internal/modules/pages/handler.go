// Package pages renders the storefront HTML from the API client's output.
package pages

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cryptotrade/storefront/internal/modules/api"
)

//go:embed templates/*.html
var templateFS embed.FS

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Handler exposes the storefront pages and the health endpoint.
type Handler struct {
	client    *api.Client
	logger    *slog.Logger
	templates map[string]*template.Template
}

func NewHandler(client *api.Client, logger *slog.Logger) (*Handler, error) {
	funcs := template.FuncMap{
		"formatPrice": formatPrice,
		"formatDate":  formatDate,
		"deref":       func(p *int) int { return *p },
	}

	templates := make(map[string]*template.Template)
	for _, page := range []string{"home", "products", "product", "orders", "notfound"} {
		t, err := template.New("layout").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", page, err)
		}
		templates[page] = t
	}

	return &Handler{client: client, logger: logger, templates: templates}, nil
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.home)
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/orders", h.listOrders)
	r.Get("/health", h.health)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderNotFound(w, "The page you were looking for does not exist.")
	})
}

type pageData struct {
	Title string
	Nav   string

	Health   api.HealthResponse
	Featured []api.Product
	Products []api.Product
	Product  *api.Product
	Orders   []api.Order
	Message  string
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	products := h.client.GetProducts(r.Context())
	if len(products) > 3 {
		products = products[:3]
	}
	h.render(w, http.StatusOK, "home", pageData{
		Title:    "Overview",
		Nav:      "overview",
		Health:   h.client.GetHealth(r.Context()),
		Featured: products,
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "products", pageData{
		Title:    "Products",
		Nav:      "products",
		Products: h.client.GetProducts(r.Context()),
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product := h.client.GetProduct(r.Context(), id)
	if product == nil {
		h.renderNotFound(w, fmt.Sprintf("No product with id %q.", id))
		return
	}
	h.render(w, http.StatusOK, "product", pageData{
		Title:   product.Name,
		Nav:     "products",
		Product: product,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "orders", pageData{
		Title:  "Orders",
		Nav:    "orders",
		Orders: h.client.GetOrders(r.Context()),
	})
}

// health reports this process as up alongside whatever the backend (or its
// fixture) says about itself.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": h.client.GetHealth(r.Context()),
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		h.logger.Error("rendering page", "page", page, "error", err)
	}
}

func (h *Handler) renderNotFound(w http.ResponseWriter, message string) {
	h.render(w, http.StatusNotFound, "notfound", pageData{
		Title:   "Not found",
		Nav:     "",
		Message: message,
	})
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func formatPrice(price decimal.Decimal, currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + price.StringFixed(2)
	}
	return price.StringFixed(2) + " " + currency
}

func formatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
