package service

import (
	"context"
	"fmt"
	"strings"

	ctx "github.com/krakosik/voting-api/internal/context"
	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/metrics"
	"github.com/krakosik/voting-api/internal/model"
	"github.com/krakosik/voting-api/internal/repository"
)

type EventService interface {
	CreateEvent(c context.Context, name string) (dto.Event, error)
	GetEvent(c context.Context, eventID uint) (dto.Event, error)
	GetEvents(c context.Context) (dto.EventList, error)
	DeleteEvent(c context.Context, eventID uint) (dto.Message, error)
}

type eventService struct {
	repositories repository.Repositories
}

func newEventService(repositories repository.Repositories) EventService {
	return &eventService{
		repositories: repositories,
	}
}

func (e *eventService) CreateEvent(c context.Context, name string) (dto.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dto.Event{}, fmt.Errorf("%w: event name is required", dto.ErrInvalidInput)
	}

	var created model.Event
	err := e.repositories.Transaction(c, func(r repository.Repositories) error {
		_, exists, err := r.Event().FindByName(name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: event %q", dto.ErrConflict, name)
		}

		created, err = r.Event().Create(model.Event{Name: name})
		return err
	})
	if err != nil {
		return dto.Event{}, err
	}

	metrics.EventsCreatedTotal.Inc()
	ctx.GetLoggerFromContext(c).Infof("Created event %d %q", created.ID, created.Name)

	return dto.NewEvent(created), nil
}

func (e *eventService) GetEvent(c context.Context, eventID uint) (dto.Event, error) {
	var event model.Event
	err := e.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		event, err = r.Event().GetByIDWithVotes(eventID)
		return err
	})
	if err != nil {
		return dto.Event{}, err
	}

	return dto.NewEventDetail(event), nil
}

func (e *eventService) GetEvents(c context.Context) (dto.EventList, error) {
	var events []model.Event
	err := e.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		events, err = r.Event().List()
		return err
	})
	if err != nil {
		return dto.EventList{}, err
	}

	return dto.NewEventList(events), nil
}

// DeleteEvent removes the event together with all of its votes.
func (e *eventService) DeleteEvent(c context.Context, eventID uint) (dto.Message, error) {
	var deleted model.Event
	err := e.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		deleted, err = r.Event().GetByID(eventID)
		if err != nil {
			return err
		}
		if err = r.Vote().DeleteByEvent(eventID); err != nil {
			return err
		}
		return r.Event().Delete(eventID)
	})
	if err != nil {
		return dto.Message{}, err
	}

	metrics.EventsDeletedTotal.Inc()
	ctx.GetLoggerFromContext(c).Infof("Deleted event %d %q", deleted.ID, deleted.Name)

	return dto.Message{Message: "successfully deleted event: " + deleted.Name}, nil
}
