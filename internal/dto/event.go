package dto

import (
	"github.com/krakosik/voting-api/internal/model"
)

type Vote struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Event uint   `json:"event"`
}

type Event struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Votes  []Vote `json:"votes"`
	Amount *int   `json:"amount,omitempty"`
}

type VoteList struct {
	Amount int    `json:"amount"`
	Votes  []Vote `json:"votes"`
}

type EventList struct {
	Amount int     `json:"amount"`
	Events []Event `json:"events"`
}

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}

// ResetResult holds exactly one of its fields, depending on the reset scope.
type ResetResult struct {
	Vote  *Vote
	Event *Event
	Votes *VoteList
}

func (r ResetResult) Body() any {
	switch {
	case r.Vote != nil:
		return r.Vote
	case r.Event != nil:
		return r.Event
	default:
		return r.Votes
	}
}

func NewVote(v model.Vote) Vote {
	return Vote{
		ID:    v.ID,
		Name:  v.Name,
		Count: v.Count,
		Event: v.EventID,
	}
}

func NewVotes(votes []model.Vote) []Vote {
	result := make([]Vote, 0, len(votes))
	for _, v := range votes {
		result = append(result, NewVote(v))
	}
	return result
}

func NewVoteList(votes []model.Vote) VoteList {
	return VoteList{
		Amount: len(votes),
		Votes:  NewVotes(votes),
	}
}

// NewEvent maps an event with its preloaded votes, without the amount field.
func NewEvent(e model.Event) Event {
	return Event{
		ID:    e.ID,
		Name:  e.Name,
		Votes: NewVotes(e.Votes),
	}
}

// NewEventDetail is NewEvent plus the number of votes.
func NewEventDetail(e model.Event) Event {
	event := NewEvent(e)
	amount := len(event.Votes)
	event.Amount = &amount
	return event
}

func NewEventList(events []model.Event) EventList {
	result := make([]Event, 0, len(events))
	for _, e := range events {
		result = append(result, NewEvent(e))
	}
	return EventList{
		Amount: len(result),
		Events: result,
	}
}
