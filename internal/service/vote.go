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

type VoteService interface {
	CreateVote(c context.Context, name string, eventID uint) (dto.Vote, error)
	GetVote(c context.Context, voteID uint) (dto.Vote, error)
	GetVotes(c context.Context, eventID *uint) (dto.VoteList, error)
	Increment(c context.Context, voteID uint) (dto.Vote, error)
	Decrement(c context.Context, voteID uint) (dto.Vote, error)
	Reset(c context.Context, voteID, eventID *uint) (dto.ResetResult, error)
	DeleteVote(c context.Context, voteID uint) (dto.Message, error)
}

type voteService struct {
	repositories repository.Repositories
}

func newVoteService(repositories repository.Repositories) VoteService {
	return &voteService{
		repositories: repositories,
	}
}

func (v *voteService) CreateVote(c context.Context, name string, eventID uint) (dto.Vote, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dto.Vote{}, fmt.Errorf("%w: vote name is required", dto.ErrInvalidInput)
	}

	var created model.Vote
	err := v.repositories.Transaction(c, func(r repository.Repositories) error {
		if _, err := r.Event().GetByID(eventID); err != nil {
			return err
		}

		_, exists, err := r.Vote().FindByEventAndName(eventID, name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: vote %q in event %d", dto.ErrConflict, name, eventID)
		}

		created, err = r.Vote().Create(model.Vote{Name: name, EventID: eventID})
		return err
	})
	if err != nil {
		return dto.Vote{}, err
	}

	metrics.VoteOperationsTotal.WithLabelValues(metrics.OperationCreate).Inc()
	ctx.GetLoggerFromContext(c).Infof("Created vote %d %q in event %d", created.ID, created.Name, eventID)

	return dto.NewVote(created), nil
}

func (v *voteService) GetVote(c context.Context, voteID uint) (dto.Vote, error) {
	var vote model.Vote
	err := v.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		vote, err = r.Vote().GetByID(voteID)
		return err
	})
	if err != nil {
		return dto.Vote{}, err
	}

	return dto.NewVote(vote), nil
}

// GetVotes lists every vote, or only the votes of eventID when it is set. An
// unknown event yields an empty list.
func (v *voteService) GetVotes(c context.Context, eventID *uint) (dto.VoteList, error) {
	var votes []model.Vote
	err := v.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		votes, err = r.Vote().List(eventID)
		return err
	})
	if err != nil {
		return dto.VoteList{}, err
	}

	return dto.NewVoteList(votes), nil
}

func (v *voteService) Increment(c context.Context, voteID uint) (dto.Vote, error) {
	return v.addToCount(c, voteID, 1, metrics.OperationIncrement)
}

// Decrement has no lower bound, counts may go negative.
func (v *voteService) Decrement(c context.Context, voteID uint) (dto.Vote, error) {
	return v.addToCount(c, voteID, -1, metrics.OperationDecrement)
}

func (v *voteService) addToCount(c context.Context, voteID uint, delta int, operation string) (dto.Vote, error) {
	var vote model.Vote
	err := v.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		vote, err = r.Vote().AddToCount(voteID, delta)
		return err
	})
	if err != nil {
		return dto.Vote{}, err
	}

	metrics.VoteOperationsTotal.WithLabelValues(operation).Inc()
	ctx.GetLoggerFromContext(c).Debugf("Vote %d %s to %d", vote.ID, operation, vote.Count)

	return dto.NewVote(vote), nil
}

// Reset sets counts to zero. A vote id takes precedence over an event id; with
// neither, every vote is reset. The result mirrors the scope: the vote, the
// event with its votes, or the list of all votes.
func (v *voteService) Reset(c context.Context, voteID, eventID *uint) (dto.ResetResult, error) {
	var result dto.ResetResult
	err := v.repositories.Transaction(c, func(r repository.Repositories) error {
		switch {
		case voteID != nil:
			vote, err := r.Vote().ResetByID(*voteID)
			if err != nil {
				return err
			}
			mapped := dto.NewVote(vote)
			result.Vote = &mapped

		case eventID != nil:
			if _, err := r.Event().GetByID(*eventID); err != nil {
				return err
			}
			if err := r.Vote().ResetByEvent(*eventID); err != nil {
				return err
			}
			event, err := r.Event().GetByIDWithVotes(*eventID)
			if err != nil {
				return err
			}
			mapped := dto.NewEventDetail(event)
			result.Event = &mapped

		default:
			if err := r.Vote().ResetAll(); err != nil {
				return err
			}
			votes, err := r.Vote().List(nil)
			if err != nil {
				return err
			}
			mapped := dto.NewVoteList(votes)
			result.Votes = &mapped
		}
		return nil
	})
	if err != nil {
		return dto.ResetResult{}, err
	}

	metrics.VoteOperationsTotal.WithLabelValues(metrics.OperationReset).Inc()
	logger := ctx.GetLoggerFromContext(c)
	switch {
	case result.Vote != nil:
		logger.Infof("Reset vote %d", result.Vote.ID)
	case result.Event != nil:
		logger.Infof("Reset %d votes of event %d", len(result.Event.Votes), result.Event.ID)
	default:
		logger.Infof("Reset all %d votes", result.Votes.Amount)
	}

	return result, nil
}

func (v *voteService) DeleteVote(c context.Context, voteID uint) (dto.Message, error) {
	var deleted model.Vote
	err := v.repositories.Transaction(c, func(r repository.Repositories) error {
		var err error
		deleted, err = r.Vote().GetByID(voteID)
		if err != nil {
			return err
		}
		return r.Vote().Delete(voteID)
	})
	if err != nil {
		return dto.Message{}, err
	}

	metrics.VoteOperationsTotal.WithLabelValues(metrics.OperationDelete).Inc()
	ctx.GetLoggerFromContext(c).Infof("Deleted vote %d %q", deleted.ID, deleted.Name)

	return dto.Message{Message: "successfully deleted vote: " + deleted.Name}, nil
}
