package product

import (
	"context"
	"fmt"

	"lingxi/domain"
	"lingxi/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find product", err)
		return domain.Product{}, err
	}

	return product, nil
}
