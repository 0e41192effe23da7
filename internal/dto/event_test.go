package dto

import (
	"encoding/json"
	"testing"

	"github.com/krakosik/voting-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventDetail(t *testing.T) {
	event := model.Event{
		ID:   3,
		Name: "Q1 Poll",
		Votes: []model.Vote{
			{ID: 1, EventID: 3, Name: "A", Count: 2},
			{ID: 2, EventID: 3, Name: "B", Count: -1},
		},
	}

	detail := NewEventDetail(event)
	require.NotNil(t, detail.Amount)
	assert.Equal(t, 2, *detail.Amount)
	assert.Equal(t, Vote{ID: 2, Name: "B", Count: -1, Event: 3}, detail.Votes[1])

	data, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3,
		"name": "Q1 Poll",
		"votes": [
			{"id": 1, "name": "A", "count": 2, "event": 3},
			{"id": 2, "name": "B", "count": -1, "event": 3}
		],
		"amount": 2
	}`, string(data))
}

func TestNewEventOmitsAmount(t *testing.T) {
	data, err := json.Marshal(NewEvent(model.Event{ID: 1, Name: "X"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "name": "X", "votes": []}`, string(data))
}

func TestNewEventListEmpty(t *testing.T) {
	data, err := json.Marshal(NewEventList(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 0, "events": []}`, string(data))
}

func TestResetResultBody(t *testing.T) {
	vote := &Vote{ID: 1}
	event := &Event{ID: 2}
	votes := &VoteList{}

	assert.Equal(t, vote, ResetResult{Vote: vote}.Body())
	assert.Equal(t, event, ResetResult{Event: event}.Body())
	assert.Equal(t, votes, ResetResult{Votes: votes}.Body())
}
