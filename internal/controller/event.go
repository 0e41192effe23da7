package controller

import (
	"net/http"

	"github.com/krakosik/voting-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EventController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Action(c echo.Context) error
	Delete(c echo.Context) error
}

type eventController struct {
	eventService service.EventService
	voteService  service.VoteService
}

func newEventController(eventService service.EventService, voteService service.VoteService) EventController {
	return &eventController{
		eventService: eventService,
		voteService:  voteService,
	}
}

// List handles GET /event/
func (e *eventController) List(c echo.Context) error {
	events, err := e.eventService.GetEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, events)
}

// Create handles POST /event/
func (e *eventController) Create(c echo.Context) error {
	event, err := e.eventService.CreateEvent(c.Request().Context(), c.FormValue("name"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, event)
}

// Get handles GET /event/:id
func (e *eventController) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	event, err := e.eventService.GetEvent(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondOK(c, event)
}

// Action handles POST /event/:id; reset is the only supported action.
func (e *eventController) Action(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	action, err := formAction(c)
	if err != nil {
		return err
	}
	if action != actionReset {
		return unknownAction(action)
	}

	result, err := e.voteService.Reset(c.Request().Context(), nil, &id)
	if err != nil {
		return err
	}
	return respondOK(c, result.Body())
}

// Delete handles DELETE /event/:id
func (e *eventController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	message, err := e.eventService.DeleteEvent(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondOK(c, message)
}
