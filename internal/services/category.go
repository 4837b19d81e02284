package services

import (
	"context"

	"trivia/internal/datastore"
	"trivia/internal/models"
	"trivia/internal/pkg/errorx"

	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceCategory struct {
	container *do.Injector
	db        *bun.DB
}

func NewServiceCategory(container *do.Injector) (*ServiceCategory, error) {
	db, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceCategory{container, db}, nil
}

// GetCategories returns every category in storage order. The category
// surface is read-only; there is no create or delete counterpart.
func (service *ServiceCategory) GetCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := datastore.GetCategories(ctx, service.db)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	if categories == nil {
		categories = []*models.Category{}
	}

	return categories, nil
}
