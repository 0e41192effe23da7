package repository

import (
	"errors"

	"github.com/krakosik/voting-api/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote model.Vote) (model.Vote, error)
	GetByID(id uint) (model.Vote, error)
	FindByEventAndName(eventID uint, name string) (model.Vote, bool, error)
	List(eventID *uint) ([]model.Vote, error)
	AddToCount(id uint, delta int) (model.Vote, error)
	ResetByID(id uint) (model.Vote, error)
	ResetByEvent(eventID uint) error
	ResetAll() error
	Delete(id uint) error
	DeleteByEvent(eventID uint) error
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

func (v *vote) Create(vote model.Vote) (model.Vote, error) {
	result := v.db.Create(&vote)
	if result.Error != nil {
		return model.Vote{}, translateError(result.Error)
	}

	return vote, nil
}

func (v *vote) GetByID(id uint) (model.Vote, error) {
	var vote model.Vote
	result := v.db.First(&vote, id)
	if result.Error != nil {
		return model.Vote{}, translateError(result.Error)
	}

	return vote, nil
}

func (v *vote) FindByEventAndName(eventID uint, name string) (model.Vote, bool, error) {
	var vote model.Vote
	result := v.db.Where("event_id = ? AND name = ?", eventID, name).First(&vote)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Vote{}, false, nil
		}
		return model.Vote{}, false, translateError(result.Error)
	}

	return vote, true, nil
}

// List returns all votes ordered by id, restricted to one event when eventID is set.
func (v *vote) List(eventID *uint) ([]model.Vote, error) {
	query := v.db.Order("id")
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}

	votes := make([]model.Vote, 0)
	result := query.Find(&votes)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return votes, nil
}

// AddToCount changes the counter in SQL so concurrent updates are not lost.
func (v *vote) AddToCount(id uint, delta int) (model.Vote, error) {
	result := v.db.Model(&model.Vote{}).
		Where("id = ?", id).
		UpdateColumn("count", gorm.Expr("count + ?", delta))
	if result.Error != nil {
		return model.Vote{}, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Vote{}, translateError(gorm.ErrRecordNotFound)
	}

	return v.GetByID(id)
}

func (v *vote) ResetByID(id uint) (model.Vote, error) {
	vote, err := v.GetByID(id)
	if err != nil {
		return model.Vote{}, err
	}

	result := v.db.Model(&vote).UpdateColumn("count", 0)
	if result.Error != nil {
		return model.Vote{}, translateError(result.Error)
	}
	vote.Count = 0

	return vote, nil
}

func (v *vote) ResetByEvent(eventID uint) error {
	result := v.db.Model(&model.Vote{}).Where("event_id = ?", eventID).UpdateColumn("count", 0)
	if result.Error != nil {
		return translateError(result.Error)
	}

	return nil
}

func (v *vote) ResetAll() error {
	result := v.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&model.Vote{}).
		UpdateColumn("count", 0)
	if result.Error != nil {
		return translateError(result.Error)
	}

	return nil
}

func (v *vote) Delete(id uint) error {
	result := v.db.Delete(&model.Vote{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}

	return nil
}

func (v *vote) DeleteByEvent(eventID uint) error {
	result := v.db.Where("event_id = ?", eventID).Delete(&model.Vote{})
	if result.Error != nil {
		return translateError(result.Error)
	}

	return nil
}
