package handler

import (
	"strconv"

	"trivia/internal/models"
	"trivia/internal/pkg/errorx"
	"trivia/internal/pkg/httpx"
	"trivia/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupQuestion struct {
	container *do.Injector
}

type QuestionPayload struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int    `json:"category" validate:"required"`
	Difficulty int    `json:"difficulty" validate:"required"`
}

type SearchPayload struct {
	SearchTerm string `json:"search_term"`
}

func (gr *groupQuestion) List(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	// pages are 1-based; a non-numeric page can never address a window
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.NotExist))
		}
	}

	ctx := c.Request().Context()
	questions, total, err := serviceQuestion.ListQuestions(ctx, page)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestList(c, questions, total, nil, nil)
}

func (gr *groupQuestion) Create(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	var payload QuestionPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	if err := c.Validate(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	question := &models.Question{
		Question:   payload.Question,
		Answer:     payload.Answer,
		Category:   payload.Category,
		Difficulty: payload.Difficulty,
	}

	ctx := c.Request().Context()
	created, err := serviceQuestion.CreateQuestion(ctx, question)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, created, nil)
}

func (gr *groupQuestion) Search(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	var payload SearchPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	ctx := c.Request().Context()
	questions, total, err := serviceQuestion.SearchQuestions(ctx, payload.SearchTerm)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestList(c, questions, total, nil, nil)
}

func (gr *groupQuestion) Delete(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	questionID, err := strconv.Atoi(c.Param("question"))
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Validation))
	}

	ctx := c.Request().Context()
	question, err := serviceQuestion.DeleteQuestion(ctx, questionID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, question, nil)
}
