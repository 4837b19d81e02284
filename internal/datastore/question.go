package datastore

import (
	"context"
	"strings"

	"trivia/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableQuestion(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Question)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func GetQuestions(ctx context.Context, db *bun.DB) ([]*models.Question, error) {
	var questions []*models.Question
	err := db.NewSelect().Model(&questions).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func GetQuestion(ctx context.Context, db *bun.DB, questionID int) (*models.Question, error) {
	var question models.Question
	err := db.NewSelect().Model(&question).Where("id = ?", questionID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func GetQuestionsByCategory(ctx context.Context, db *bun.DB, categoryID int) ([]*models.Question, error) {
	var questions []*models.Question
	err := db.NewSelect().Model(&questions).Where("category = ?", categoryID).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func SearchQuestions(ctx context.Context, db *bun.DB, term string) ([]*models.Question, error) {
	var questions []*models.Question
	pattern := "%" + strings.ToLower(term) + "%"
	err := db.NewSelect().Model(&questions).Where("lower(question) LIKE ?", pattern).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func InsertQuestion(ctx context.Context, db *bun.DB, question *models.Question) error {
	_, err := db.NewInsert().Model(question).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

// UpdateQuestion rewrites every column of an existing question. No route
// reaches it.
func UpdateQuestion(ctx context.Context, db *bun.DB, question *models.Question) error {
	_, err := db.NewUpdate().Model(question).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func DeleteQuestion(ctx context.Context, db *bun.DB, questionID int) error {
	_, err := db.NewDelete().Model((*models.Question)(nil)).Where("id = ?", questionID).Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}
