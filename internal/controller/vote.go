package controller

import (
	"net/http"

	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/service"
	"github.com/labstack/echo/v4"
)

type VoteController interface {
	List(c echo.Context) error
	CreateOrReset(c echo.Context) error
	Get(c echo.Context) error
	Action(c echo.Context) error
	Delete(c echo.Context) error
}

type voteController struct {
	voteService service.VoteService
}

func newVoteController(voteService service.VoteService) VoteController {
	return &voteController{
		voteService: voteService,
	}
}

// List handles GET /vote/ with an optional event_id query parameter.
func (v *voteController) List(c echo.Context) error {
	var eventID *uint
	if raw := c.QueryParam("event_id"); raw != "" {
		id, err := parseID(raw, "event_id")
		if err != nil {
			return err
		}
		eventID = &id
	}

	votes, err := v.voteService.GetVotes(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return respondOK(c, votes)
}

// CreateOrReset handles POST /vote/. With action=reset every vote is reset,
// otherwise a vote is created from the event_id and name fields.
func (v *voteController) CreateOrReset(c echo.Context) error {
	if action := c.FormValue("action"); action != "" {
		if action != actionReset {
			return unknownAction(action)
		}
		result, err := v.voteService.Reset(c.Request().Context(), nil, nil)
		if err != nil {
			return err
		}
		return respondOK(c, result.Body())
	}

	eventID, err := parseID(c.FormValue("event_id"), "event_id")
	if err != nil {
		return err
	}

	vote, err := v.voteService.CreateVote(c.Request().Context(), c.FormValue("name"), eventID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, vote)
}

// Get handles GET /vote/:id
func (v *voteController) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	vote, err := v.voteService.GetVote(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondOK(c, vote)
}

// Action handles POST /vote/:id with action=increment|decrement|reset.
func (v *voteController) Action(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	action, err := formAction(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	var vote dto.Vote
	switch action {
	case actionIncrement:
		vote, err = v.voteService.Increment(ctx, id)
	case actionDecrement:
		vote, err = v.voteService.Decrement(ctx, id)
	case actionReset:
		var result dto.ResetResult
		result, err = v.voteService.Reset(ctx, &id, nil)
		if err == nil {
			vote = *result.Vote
		}
	default:
		return unknownAction(action)
	}
	if err != nil {
		return err
	}
	return respondOK(c, vote)
}

// Delete handles DELETE /vote/:id
func (v *voteController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	message, err := v.voteService.DeleteVote(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondOK(c, message)
}
