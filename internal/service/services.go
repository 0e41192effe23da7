package service

import (
	"github.com/krakosik/voting-api/internal/repository"
)

type Services interface {
	Event() EventService
	Vote() VoteService
	Seed() SeedService
}

type services struct {
	eventService EventService
	voteService  VoteService
	seedService  SeedService
}

func NewServices(repositories repository.Repositories) Services {
	return &services{
		eventService: newEventService(repositories),
		voteService:  newVoteService(repositories),
		seedService:  newSeedService(repositories),
	}
}

func (s services) Event() EventService {
	return s.eventService
}

func (s services) Vote() VoteService {
	return s.voteService
}

func (s services) Seed() SeedService {
	return s.seedService
}
