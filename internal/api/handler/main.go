package handler

import (
	"net/http"

	"trivia/internal/pkg/httpx"
	"trivia/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.Validator = &payloadValidator{validator.New()}
	r.HTTPErrorHandler = httpx.ErrorHandler
	if cfg.Mode != "test" {
		r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
		}))
	}
	r.Use(middleware.Recover())
	r.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		MaxAge:       60 * 60,
	}))

	// fail fast on a miswired container instead of on the first request
	if _, err := do.Invoke[*services.ServiceCategory](cfg.Container); err != nil {
		return nil, err
	}
	if _, err := do.Invoke[*services.ServiceQuestion](cfg.Container); err != nil {
		return nil, err
	}

	ct := groupCategory{cfg.Container}
	r.GET("/categories", ct.List)
	r.GET("/categories/:category/questions", ct.Questions)

	q := groupQuestion{cfg.Container}
	r.GET("/questions", q.List)
	r.POST("/questions", q.Create)
	r.POST("/questions/search", q.Search)
	r.DELETE("/questions/:question", q.Delete)

	z := groupQuiz{cfg.Container}
	r.POST("/quiz", z.Next)

	return r, nil
}
