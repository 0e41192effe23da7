package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	Event() EventRepository
	Vote() VoteRepository

	// Transaction runs fn against repositories bound to a single database
	// transaction. Returning an error from fn rolls it back.
	Transaction(ctx context.Context, fn func(Repositories) error) error
}

type repositories struct {
	db              *gorm.DB
	eventRepository EventRepository
	voteRepository  VoteRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	if err := Migrate(db); err != nil {
		logrus.Panic(err)
	}
	return newRepositories(db)
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		db:              db,
		eventRepository: newEventRepository(db),
		voteRepository:  newVoteRepository(db),
	}
}

// Migrate creates or updates the events and votes tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Event{}, &model.Vote{}); err != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}
	return nil
}

func (r repositories) Event() EventRepository {
	return r.eventRepository
}

func (r repositories) Vote() VoteRepository {
	return r.voteRepository
}

func (r repositories) Transaction(ctx context.Context, fn func(Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", dto.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%w: %v", dto.ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}
}

// isUniqueViolation catches drivers that do not translate their errors.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
