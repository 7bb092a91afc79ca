package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/domain/repository"
	"github.com/croshet/storefront-api/internal/infrastructure/search"
)

// ProductService owns the catalog. Writes are admin-only (enforced at the
// router); search is mirrored into Elasticsearch best-effort.
type ProductService struct {
	Repo   repository.ProductRepository
	Index  *search.ProductIndex
	Logger *logrus.Logger
}

type ProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	ImageURL    string
	Category    string
	Stock       int
}

func (s *ProductService) List(ctx context.Context, category string) ([]*entity.Product, error) {
	return s.Repo.List(ctx, category)
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    currencyOrDefault(in.Currency),
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Stock:       in.Stock,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	_ = s.Index.IndexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.PriceCents = in.PriceCents
	p.Currency = currencyOrDefault(in.Currency)
	p.ImageURL = in.ImageURL
	p.Category = in.Category
	p.Stock = in.Stock
	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	_ = s.Index.IndexProduct(ctx, p)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	_ = s.Index.DeleteProduct(ctx, id)
	return nil
}

func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.Index.Search(ctx, q, size)
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "PHP"
	}
	return c
}
