package handler

import (
	"errors"

	"trivia/internal/pkg/errorx"
	"trivia/internal/pkg/httpx"
	"trivia/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupQuiz struct {
	container *do.Injector
}

type QuizCategory struct {
	ID int `json:"id"`
}

// Pointer fields distinguish an absent key from an empty value; both keys
// must be present, previous_questions may be empty.
type QuizPayload struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions *[]string     `json:"previous_questions"`
}

func (gr *groupQuiz) Next(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	var payload QuizPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	if payload.QuizCategory == nil || payload.PreviousQuestions == nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("missing quiz_category or previous_questions"), errorx.Validation))
	}

	ctx := c.Request().Context()
	question, err := serviceQuestion.NextQuizQuestion(ctx, payload.QuizCategory.ID, *payload.PreviousQuestions)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, question, nil)
}
