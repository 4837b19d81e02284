package datastore

import (
	"context"

	"trivia/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableCategory(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Category)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func GetCategories(ctx context.Context, db *bun.DB) ([]*models.Category, error) {
	var categories []*models.Category
	err := db.NewSelect().Model(&categories).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func InsertCategory(ctx context.Context, db *bun.DB, category *models.Category) error {
	_, err := db.NewInsert().Model(category).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
