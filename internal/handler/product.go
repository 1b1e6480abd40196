package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProductService interface {
	ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error)
	ProductBySKU(ctx context.Context, sku string) (entities.Product, error)
	Products(ctx context.Context, f entities.ProductsFilter) ([]entities.Product, int, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	UpdateStock(ctx context.Context, productID uuid.UUID, sizes []entities.SizeStock) (entities.Product, error)
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/sku/{sku}", h.GetProductBySKU)
		r.Route("/{product_id}", func(r chi.Router) {
			r.Get("/", h.GetProductByID)
			r.Put("/", h.UpdateProduct)
			r.Delete("/", h.DeleteProduct)
			r.Put("/stock", h.UpdateStock)
		})
	})
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entities.ProductsFilter{
		MainCategory: q.Get("main_category"),
		SubCategory:  q.Get("sub_category"),
		Search:       q.Get("search"),
		ActiveOnly:   q.Get("active") == "true",
		FeaturedOnly: q.Get("featured") == "true",
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 20),
	}

	products, total, err := h.svc.Products(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	list := make([]Product, 0, len(products))
	for _, p := range products {
		list = append(list, ProductEntityToJSON(p))
	}

	utils.WriteJSON(w, ProductList{
		Products: list,
		Pagination: Pagination{
			CurrentPage: filter.Page,
			TotalPages:  totalPages(total, filter.Limit),
			Total:       total,
			Limit:       filter.Limit,
		},
	}, http.StatusOK)
}

func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.svc.ProductByID(ctx, productID)
	if h.writeProductError(ctx, w, err) {
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *ProductHandler) GetProductBySKU(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sku := chi.URLParam(r, "sku")

	if err := h.validate.Var(sku, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.ProductBySKU(ctx, sku)
	if h.writeProductError(ctx, w, err) {
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.Create(ctx, req.ToEntity())
	if errors.Is(err, entities.ErrDuplicateSKU) {
		utils.WriteError(w, "sku already exists", http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrInvalidProduct) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err), slog.String("sku", req.SKU))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product := req.ToEntity()
	product.ID = productID

	updated, err := h.svc.Update(ctx, product)
	if errors.Is(err, entities.ErrInvalidProduct) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.writeProductError(ctx, w, err) {
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(updated), http.StatusOK)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(ctx, productID); h.writeProductError(ctx, w, err) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type stockRequest struct {
	Sizes []SizeStock `json:"sizes" validate:"required,min=1,dive"`
}

func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req stockRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sizes := make([]entities.SizeStock, 0, len(req.Sizes))
	for _, s := range req.Sizes {
		sizes = append(sizes, entities.SizeStock{Size: s.Size, Stock: s.Stock})
	}

	product, err := h.svc.UpdateStock(ctx, productID, sizes)
	if errors.Is(err, entities.ErrInvalidProduct) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.writeProductError(ctx, w, err) {
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

func (h *ProductHandler) writeProductError(ctx context.Context, w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "product operation failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
	return true
}
