package service

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	ctx "github.com/krakosik/voting-api/internal/context"
	"github.com/krakosik/voting-api/internal/model"
	"github.com/krakosik/voting-api/internal/repository"
)

const (
	demoEventName = "Terrible ideas hackathon"
	votesPerEvent = 10
	maxSeedCount  = 10
)

var demoVoteNames = []string{
	"Tinder for pets",
	"Facebook for babies",
	"Giant hamster wheel power generator",
}

type SeedReport struct {
	EventsCreated int
	VotesCreated  int
	VotesSkipped  int
}

type SeedService interface {
	// Seed fills the database with demo data. Existing events are reused and
	// votes whose name is already taken in their event are skipped.
	Seed(c context.Context, events int, seed int64) (SeedReport, error)
}

type seedService struct {
	repositories repository.Repositories
}

func newSeedService(repositories repository.Repositories) SeedService {
	return &seedService{
		repositories: repositories,
	}
}

type seedVote struct {
	name  string
	count int
}

func (s *seedService) Seed(c context.Context, events int, seed int64) (SeedReport, error) {
	var report SeedReport

	demoVotes := make([]seedVote, 0, len(demoVoteNames))
	for _, name := range demoVoteNames {
		demoVotes = append(demoVotes, seedVote{name: name})
	}
	if err := s.seedEvent(c, demoEventName, demoVotes, &report); err != nil {
		return report, err
	}

	faker := gofakeit.New(seed)
	for i := 0; i < events; i++ {
		name := fmt.Sprintf("Best %s contest.", faker.JobTitle())
		votes := make([]seedVote, 0, votesPerEvent)
		for j := 0; j < votesPerEvent; j++ {
			votes = append(votes, seedVote{name: faker.Name(), count: faker.Number(0, maxSeedCount)})
		}
		if err := s.seedEvent(c, name, votes, &report); err != nil {
			return report, err
		}
	}

	ctx.GetLoggerFromContext(c).Infof("Seeded %d events and %d votes, skipped %d existing votes",
		report.EventsCreated, report.VotesCreated, report.VotesSkipped)

	return report, nil
}

func (s *seedService) seedEvent(c context.Context, name string, votes []seedVote, report *SeedReport) error {
	return s.repositories.Transaction(c, func(r repository.Repositories) error {
		event, exists, err := r.Event().FindByName(name)
		if err != nil {
			return err
		}
		if !exists {
			event, err = r.Event().Create(model.Event{Name: name})
			if err != nil {
				return err
			}
			report.EventsCreated++
		}

		for _, v := range votes {
			_, exists, err := r.Vote().FindByEventAndName(event.ID, v.name)
			if err != nil {
				return err
			}
			if exists {
				report.VotesSkipped++
				continue
			}
			if _, err = r.Vote().Create(model.Vote{EventID: event.ID, Name: v.name, Count: v.count}); err != nil {
				return err
			}
			report.VotesCreated++
		}
		return nil
	})
}
