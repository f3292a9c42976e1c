package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"lingxi/business/customer"
	"lingxi/domain"
	"lingxi/pkg/logger"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
}

type ProductAnalyzer interface {
	AnalyzeProduct(ctx context.Context, draft domain.ProductDraft, pool []string) (domain.ProductAnalysis, error)
}

type ProductHandler struct {
	productService ProductService
	analyzer       ProductAnalyzer
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService, analyzer ProductAnalyzer) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		analyzer:       analyzer,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type AnalyzeProductRequest struct {
	Name      string  `json:"name" validate:"required"`
	Category  string  `json:"category" validate:"required,oneof=savings credit wealth insurance"`
	RiskLevel int     `json:"riskLevel" validate:"required,min=1,max=4"`
	MinAmount float64 `json:"minAmount" validate:"gte=0"`
	MinAge    int     `json:"minAge" validate:"gte=0"`
	MaxAge    int     `json:"maxAge" validate:"gtefield=MinAge"`
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"total":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) AnalyzeProduct(c echo.Context) error {
	var req AnalyzeProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product analysis request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	draft := domain.ProductDraft{
		Name:      req.Name,
		Category:  domain.ProductCategory(req.Category),
		RiskLevel: req.RiskLevel,
		MinAmount: req.MinAmount,
		MinAge:    req.MinAge,
		MaxAge:    req.MaxAge,
	}

	analysis, err := h.analyzer.AnalyzeProduct(ctx, draft, customer.AnalysisPool())
	if err != nil {
		logger.Error("Failed to analyze product draft", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analysis))
}
