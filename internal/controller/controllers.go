package controller

import (
	"net/http"

	"github.com/krakosik/voting-api/internal/metrics"
	"github.com/krakosik/voting-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Controllers interface {
	Event() EventController
	Vote() VoteController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	eventController EventController
	voteController  VoteController
	infoController  InfoController
}

func NewControllers(services service.Services) Controllers {
	return &controllers{
		eventController: newEventController(services.Event(), services.Vote()),
		voteController:  newVoteController(services.Vote()),
		infoController:  newInfoController(),
	}
}

func (c controllers) Event() EventController {
	return c.eventController
}

func (c controllers) Vote() VoteController {
	return c.voteController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Use(middleware.RequestID())
	e.Use(RequestLogger())
	e.Use(RequestMetrics())
	e.Use(middleware.Recover())

	e.GET("/", c.infoController.Info)
	e.GET("/health", c.infoController.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.GET("/event/", c.eventController.List)
	e.POST("/event/", c.eventController.Create)
	e.GET("/event/:id", c.eventController.Get)
	e.POST("/event/:id", c.eventController.Action)
	e.DELETE("/event/:id", c.eventController.Delete)

	e.GET("/vote/", c.voteController.List)
	e.POST("/vote/", c.voteController.CreateOrReset)
	e.GET("/vote/:id", c.voteController.Get)
	e.POST("/vote/:id", c.voteController.Action)
	e.DELETE("/vote/:id", c.voteController.Delete)
}

// NewServer builds an echo instance with every route registered.
func NewServer(services service.Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	NewControllers(services).Route(e)
	return e
}

const indent = "  "

func respond(c echo.Context, code int, body any) error {
	return c.JSONPretty(code, body, indent)
}

func respondOK(c echo.Context, body any) error {
	return respond(c, http.StatusOK, body)
}
