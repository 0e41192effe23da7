package service

import (
	"context"
	"testing"

	"github.com/krakosik/voting-api/internal/dto"
	"github.com/krakosik/voting-api/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) Services {
	t.Helper()
	return NewServices(testutil.SetupRepositories(t))
}

func mustCreateEvent(t *testing.T, s Services, name string) dto.Event {
	t.Helper()
	event, err := s.Event().CreateEvent(context.Background(), name)
	require.NoError(t, err)
	return event
}

func mustCreateVote(t *testing.T, s Services, eventID uint, name string) dto.Vote {
	t.Helper()
	vote, err := s.Vote().CreateVote(context.Background(), name, eventID)
	require.NoError(t, err)
	return vote
}
