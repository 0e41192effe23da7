package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/krakosik/voting-api/internal/client"
	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepositories(t *testing.T) (Repositories, *gorm.DB) {
	t.Helper()

	db, err := client.NewDatabase(dto.Config{DatabaseDriver: dto.DriverSQLite, DatabaseURL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return NewRepositories(db), db
}

func createEvent(t *testing.T, r Repositories, name string) model.Event {
	t.Helper()
	event, err := r.Event().Create(model.Event{Name: name})
	require.NoError(t, err)
	return event
}

func createVote(t *testing.T, r Repositories, eventID uint, name string) model.Vote {
	t.Helper()
	vote, err := r.Vote().Create(model.Vote{EventID: eventID, Name: name})
	require.NoError(t, err)
	return vote
}

func TestTransactionRollsBack(t *testing.T) {
	r, _ := setupRepositories(t)
	boom := errors.New("boom")

	err := r.Transaction(context.Background(), func(tx Repositories) error {
		if _, err := tx.Event().Create(model.Event{Name: "rolled back"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, exists, err := r.Event().FindByName("rolled back")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionCommits(t *testing.T) {
	r, _ := setupRepositories(t)

	err := r.Transaction(context.Background(), func(tx Repositories) error {
		event, err := tx.Event().Create(model.Event{Name: "committed"})
		if err != nil {
			return err
		}
		_, err = tx.Vote().Create(model.Vote{EventID: event.ID, Name: "A"})
		return err
	})
	require.NoError(t, err)

	event, exists, err := r.Event().FindByName("committed")
	require.NoError(t, err)
	require.True(t, exists)

	votes, err := r.Vote().List(&event.ID)
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func TestMigrateIsIdempotent(t *testing.T) {
	_, db := setupRepositories(t)
	assert.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasIndex(&model.Vote{}, "idx_votes_event_name"))
}

func TestTranslateError(t *testing.T) {
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), dto.ErrNotFound)
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), dto.ErrConflict)
	assert.ErrorIs(t, translateError(errors.New("disk full")), dto.ErrInternalFailure)
}

func TestTranslateErrorUntranslatedUniqueViolation(t *testing.T) {
	err := errors.New("constraint failed: UNIQUE constraint failed: events.name (2067)")
	assert.ErrorIs(t, translateError(err), dto.ErrConflict)
}
