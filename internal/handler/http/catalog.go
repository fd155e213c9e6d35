package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promoworks/catalog-api/internal/service"
	"github.com/promoworks/catalog-api/pkg/httputil"
	"github.com/promoworks/catalog-api/pkg/validator"
)

// CatalogHandler handles HTTP requests for the product catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// PricingRequest is the JSON request body for the pricing endpoint.
// Identifiers are accepted as JSON strings or numbers.
type PricingRequest struct {
	VariantID json.Number `json:"variant_id" validate:"required"`
	Quantity  *int        `json:"quantity" validate:"required,gt=0"`
}

// --- Handlers ---

// GetProduct handles GET /api/products/{productId}.
// Returns the product summary with derived color and size attribute sets.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	summary, err := h.service.GetProductSummary(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}

// GetVariant handles GET /api/products/{productId}/variants/{variantId}.
// Returns the full variant body including prices and price includes.
func (h *CatalogHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	variantID := chi.URLParam(r, "variantId")

	variant, err := h.service.GetVariant(r.Context(), productID, variantID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, variant)
}

// GetVariantByAttributes handles
// GET /api/products/{productId}/variant-by-attributes?color=&size=.
// Both query parameters are required; matching is case-insensitive.
func (h *CatalogHandler) GetVariantByAttributes(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	color := r.URL.Query().Get("color")
	size := r.URL.Query().Get("size")

	if color == "" || size == "" {
		httputil.WriteErrorMsg(w, http.StatusBadRequest, "Both color and size parameters are required")
		return
	}

	variant, err := h.service.GetVariantByAttributes(r.Context(), productID, color, size)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, variant)
}

// CalculatePricing handles POST /api/products/{productId}/pricing.
// An absent or malformed body decodes to an empty request; each required
// field's absence is then reported as a field-specific validation error.
func (h *CatalogHandler) CalculatePricing(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req PricingRequest
	decodeLenient(r, &req)

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	quote, err := h.service.PriceQuote(r.Context(), productID, req.VariantID.String(), *req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, quote)
}

// decodeLenient decodes the request body into dst, treating an absent or
// malformed body as an empty object. Required-field validation reports what
// is missing afterwards.
func decodeLenient(r *http.Request, dst any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(dst)
}
