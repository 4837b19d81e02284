package services

import (
	"context"
	"errors"
	"math/rand"

	"trivia/internal/datastore"
	"trivia/internal/models"
	"trivia/internal/pkg/errorx"

	"github.com/samber/do"
	"github.com/uptrace/bun"
)

type ServiceQuestion struct {
	container *do.Injector
	db        *bun.DB
}

func NewServiceQuestion(container *do.Injector) (*ServiceQuestion, error) {
	db, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceQuestion{container, db}, nil
}

// ListQuestions windows the full question list onto a 1-based page of
// QUESTIONS_PER_PAGE items. The returned total is the full store count, for
// client-side pagination. An empty window, including any page < 1, is a
// missing resource.
func (service *ServiceQuestion) ListQuestions(ctx context.Context, page int) ([]*models.Question, int, error) {
	if page < 1 {
		return nil, 0, errorx.Wrap(errors.New("page out of range"), errorx.NotExist)
	}

	questions, err := datastore.GetQuestions(ctx, service.db)
	if err != nil {
		return nil, 0, errorx.Wrap(err, errorx.Service)
	}

	start := (page - 1) * QUESTIONS_PER_PAGE
	if start >= len(questions) {
		return nil, 0, errorx.Wrap(errors.New("page out of range"), errorx.NotExist)
	}

	end := start + QUESTIONS_PER_PAGE
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end], len(questions), nil
}

func (service *ServiceQuestion) CreateQuestion(ctx context.Context, question *models.Question) (*models.Question, error) {
	if err := datastore.InsertQuestion(ctx, service.db, question); err != nil {
		return nil, errorx.Wrap(err, errorx.Validation)
	}

	return question, nil
}

// DeleteQuestion removes a question and reports it as it existed right
// before deletion. A missing record and a failed delete are the same
// unprocessable condition to the caller.
func (service *ServiceQuestion) DeleteQuestion(ctx context.Context, questionID int) (*models.Question, error) {
	question, err := datastore.GetQuestion(ctx, service.db, questionID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Validation)
	}

	if err := datastore.DeleteQuestion(ctx, service.db, questionID); err != nil {
		return nil, errorx.Wrap(err, errorx.Validation)
	}

	return question, nil
}

// SearchQuestions matches term case-insensitively against question text.
// Zero matches is a valid empty result; only an empty term fails.
func (service *ServiceQuestion) SearchQuestions(ctx context.Context, term string) ([]*models.Question, int, error) {
	if len(term) == 0 {
		return nil, 0, errorx.Wrap(errors.New("empty search term"), errorx.NotExist)
	}

	questions, err := datastore.SearchQuestions(ctx, service.db, term)
	if err != nil {
		return nil, 0, errorx.Wrap(err, errorx.Service)
	}

	if questions == nil {
		questions = []*models.Question{}
	}

	return questions, len(questions), nil
}

// QuestionsByCategory fails on an empty result, so an unknown category id
// and a known one with no questions are indistinguishable to the caller.
func (service *ServiceQuestion) QuestionsByCategory(ctx context.Context, categoryID int) ([]*models.Question, int, error) {
	questions, err := datastore.GetQuestionsByCategory(ctx, service.db, categoryID)
	if err != nil {
		return nil, 0, errorx.Wrap(err, errorx.Service)
	}

	if len(questions) == 0 {
		return nil, 0, errorx.Wrap(errors.New("no questions in category"), errorx.NotExist)
	}

	return questions, len(questions), nil
}

// NextQuizQuestion picks uniformly at random among the category's questions
// whose text is not in previousQuestions. Exclusion builds a fresh slice;
// the candidate list is never mutated while being scanned. Quiz state lives
// entirely with the caller.
func (service *ServiceQuestion) NextQuizQuestion(ctx context.Context, categoryID int, previousQuestions []string) (*models.Question, error) {
	questions, err := datastore.GetQuestionsByCategory(ctx, service.db, categoryID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Validation)
	}

	seen := make(map[string]bool, len(previousQuestions))
	for _, text := range previousQuestions {
		seen[text] = true
	}

	candidates := make([]*models.Question, 0, len(questions))
	for _, question := range questions {
		if !seen[question.Question] {
			candidates = append(candidates, question)
		}
	}

	if len(candidates) == 0 {
		return nil, errorx.Wrap(errors.New("no question available"), errorx.Validation)
	}

	return candidates[rand.Intn(len(candidates))], nil
}
