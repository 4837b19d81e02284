package services_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"trivia/internal/datastore"
	"trivia/internal/models"
	"trivia/internal/pkg/errorx"
	"trivia/internal/services"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) (*services.ServiceQuestion, *bun.DB) {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, datastore.CreateTableCategory(ctx, db))
	require.NoError(t, datastore.CreateTableQuestion(ctx, db))

	injector := do.New()
	do.ProvideValue(injector, db)

	service, err := services.NewServiceQuestion(injector)
	require.NoError(t, err)

	return service, db
}

func insertQuestions(t *testing.T, db *bun.DB, categoryID, n int) []*models.Question {
	t.Helper()

	questions := make([]*models.Question, 0, n)
	for i := 0; i < n; i++ {
		question := &models.Question{
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   categoryID,
			Difficulty: 1 + i%5,
		}
		require.NoError(t, datastore.InsertQuestion(context.Background(), db, question))
		questions = append(questions, question)
	}
	return questions
}

func TestListQuestionsWindows(t *testing.T) {
	service, db := newTestService(t)
	insertQuestions(t, db, 1, 25)
	ctx := context.Background()

	page1, total, err := service.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, page1, 10)

	page3, total, err := service.ListQuestions(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, page3, 5)

	// windows must not overlap
	assert.NotEqual(t, page1[0].ID, page3[0].ID)
}

func TestListQuestionsOutOfRange(t *testing.T) {
	service, db := newTestService(t)
	insertQuestions(t, db, 1, 3)
	ctx := context.Background()

	for _, page := range []int{0, -5, 2, 100} {
		_, _, err := service.ListQuestions(ctx, page)
		require.Error(t, err, "page %d", page)
		assert.Equal(t, errorx.NotExist, errorx.KindOf(err))
	}
}

func TestDeleteQuestionReturnsRecord(t *testing.T) {
	service, db := newTestService(t)
	questions := insertQuestions(t, db, 1, 2)
	ctx := context.Background()

	deleted, err := service.DeleteQuestion(ctx, questions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, questions[0].Question, deleted.Question)
	assert.Equal(t, questions[0].Answer, deleted.Answer)

	_, err = service.DeleteQuestion(ctx, questions[0].ID)
	require.Error(t, err)
	assert.Equal(t, errorx.Validation, errorx.KindOf(err))
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	require.NoError(t, datastore.InsertQuestion(ctx, db, &models.Question{
		Question: "What is the Heaviest Organ?", Answer: "The Liver", Category: 1, Difficulty: 4,
	}))

	matches, total, err := service.SearchQuestions(ctx, "hEaViEsT")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, matches, 1)

	matches, total, err = service.SearchQuestions(ctx, "nothing here")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	_, _, err = service.SearchQuestions(ctx, "")
	require.Error(t, err)
	assert.Equal(t, errorx.NotExist, errorx.KindOf(err))
}

func TestQuestionsByCategoryEmptyIsNotExist(t *testing.T) {
	service, db := newTestService(t)
	insertQuestions(t, db, 1, 2)
	ctx := context.Background()

	questions, total, err := service.QuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, questions, 2)

	_, _, err = service.QuestionsByCategory(ctx, 42)
	require.Error(t, err)
	assert.Equal(t, errorx.NotExist, errorx.KindOf(err))
}

func TestNextQuizQuestionExcludesAdjacentMatches(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	// consecutive excluded questions would trip a mutate-while-iterating
	// filter; the survivor must still always be found
	texts := []string{"A", "B", "C", "D"}
	for _, text := range texts {
		require.NoError(t, datastore.InsertQuestion(ctx, db, &models.Question{
			Question: text, Answer: text, Category: 7, Difficulty: 1,
		}))
	}

	for i := 0; i < 20; i++ {
		question, err := service.NextQuizQuestion(ctx, 7, []string{"A", "B", "C"})
		require.NoError(t, err)
		assert.Equal(t, "D", question.Question)
	}
}

func TestNextQuizQuestionExhausted(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	require.NoError(t, datastore.InsertQuestion(ctx, db, &models.Question{
		Question: "A", Answer: "a", Category: 7, Difficulty: 1,
	}))

	_, err := service.NextQuizQuestion(ctx, 7, []string{"A"})
	require.Error(t, err)
	assert.Equal(t, errorx.Validation, errorx.KindOf(err))

	// empty category behaves the same as an exhausted one
	_, err = service.NextQuizQuestion(ctx, 99, nil)
	require.Error(t, err)
	assert.Equal(t, errorx.Validation, errorx.KindOf(err))
}

func TestNextQuizQuestionUniformOverCandidates(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	for _, text := range []string{"A", "B"} {
		require.NoError(t, datastore.InsertQuestion(ctx, db, &models.Question{
			Question: text, Answer: text, Category: 7, Difficulty: 1,
		}))
	}

	picked := map[string]bool{}
	for i := 0; i < 200; i++ {
		question, err := service.NextQuizQuestion(ctx, 7, nil)
		require.NoError(t, err)
		picked[question.Question] = true
	}
	assert.True(t, picked["A"])
	assert.True(t, picked["B"])
}
