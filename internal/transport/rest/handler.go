// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	catalogerrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Messages returned to API clients.
const (
	MsgWelcome        = "Добро пожаловать в API Магазина Кастрюль!"
	MsgNotFound       = "Товар не найден"
	MsgRequired       = "Название и цена обязательны"
	MsgInvalidProduct = "Некорректные данные товара"
	MsgRouteNotFound  = "Маршрут не найден"
	MsgInternalError  = "Внутренняя ошибка сервера"
)

const (
	productsRoutePath  = "/api/products"
	productIDParamName = "id"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: newValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// newValidator reports failed fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterRoutes registers the HTTP routes for the catalog.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.NotFound(h.RouteNotFound)
	r.MethodNotAllowed(h.RouteNotFound)

	r.Get("/", h.Welcome)
	r.Get("/healthz", h.HealthCheck)

	r.Route(productsRoutePath, func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)

		r.Route("/{"+productIDParamName+"}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Patch("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, productIDParamName)
	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)

	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, "Error retrieving product", id)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// FindAll retrieves a list of all products.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received request to find all products")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, MsgInternalError)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var productCreateDto service.ProductCreateDto
	if !h.decodeAndValidate(w, r, &productCreateDto) {
		return
	}

	newProduct, err := h.service.Create(r.Context(), productCreateDto)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, MsgInternalError)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, newProduct)
}

// Update overwrites the fields present in the request body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, productIDParamName)
	h.logger.DebugContext(r.Context(), "Received request to update product", "ID", id)

	var productUpdateDto service.ProductUpdateDto
	if !h.decodeAndValidate(w, r, &productUpdateDto) {
		return
	}

	updated, err := h.service.Update(r.Context(), id, productUpdateDto)
	if err != nil {
		h.respondServiceError(w, r, err, "Error updating product", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, productIDParamName)
	h.logger.DebugContext(r.Context(), "Received request to delete product", "ID", id)

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err, "Error deleting product", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// Welcome greets clients hitting the root path.
func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request) {
	web.RespondText(w, http.StatusOK, MsgWelcome)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// RouteNotFound answers every unmatched path or method.
func (h *Handler) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Route not found", "method", r.Method, "path", r.URL.Path)
	web.RespondError(w, h.logger, http.StatusNotFound, MsgRouteNotFound)
}

// decodeAndValidate reads the JSON body into dst and validates it.
// An empty body decodes as an empty object.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, MsgInvalidProduct)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			message := MsgInvalidProduct
			errorResponse := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "gte", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
				if fieldErr.Tag() == "required" {
					message = MsgRequired
				}
			}
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondValidationError(w, h.logger, message, errorResponse)
			return false
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, MsgInvalidProduct)
		return false
	}
	return true
}

// respondServiceError maps a service error to 404 or 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, msg, id string) {
	if errors.Is(err, catalogerrors.ErrProductNotFound) {
		h.logger.WarnContext(r.Context(), "Product not found", "ID", id)
		web.RespondError(w, h.logger, http.StatusNotFound, MsgNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), msg, "ID", id, "error", err)
	web.RespondError(w, h.logger, http.StatusInternalServerError, MsgInternalError)
}
