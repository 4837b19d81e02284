package handler

import (
	"strconv"

	"trivia/internal/pkg/errorx"
	"trivia/internal/pkg/httpx"
	"trivia/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupCategory struct {
	container *do.Injector
}

func (gr *groupCategory) List(c echo.Context) error {
	serviceCategory, err := do.Invoke[*services.ServiceCategory](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	ctx := c.Request().Context()
	categories, err := serviceCategory.GetCategories(ctx)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, categories, nil)
}

func (gr *groupCategory) Questions(c echo.Context) error {
	serviceQuestion, err := do.Invoke[*services.ServiceQuestion](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	categoryID, err := strconv.Atoi(c.Param("category"))
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.NotExist))
	}

	ctx := c.Request().Context()
	questions, total, err := serviceQuestion.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestList(c, questions, total, &categoryID, nil)
}
