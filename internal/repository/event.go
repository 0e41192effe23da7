package repository

import (
	"errors"

	"github.com/krakosik/voting-api/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event model.Event) (model.Event, error)
	GetByID(id uint) (model.Event, error)
	GetByIDWithVotes(id uint) (model.Event, error)
	FindByName(name string) (model.Event, bool, error)
	List() ([]model.Event, error)
	Delete(id uint) error
}

type event struct {
	db *gorm.DB
}

func newEventRepository(db *gorm.DB) EventRepository {
	return &event{
		db: db,
	}
}

func (e *event) Create(event model.Event) (model.Event, error) {
	result := e.db.Create(&event)
	if result.Error != nil {
		return model.Event{}, translateError(result.Error)
	}

	return event, nil
}

func (e *event) GetByID(id uint) (model.Event, error) {
	var event model.Event
	result := e.db.First(&event, id)
	if result.Error != nil {
		return model.Event{}, translateError(result.Error)
	}

	return event, nil
}

func (e *event) GetByIDWithVotes(id uint) (model.Event, error) {
	var event model.Event
	result := e.db.Preload("Votes", orderByID).First(&event, id)
	if result.Error != nil {
		return model.Event{}, translateError(result.Error)
	}

	return event, nil
}

// FindByName reports whether an event with the given name exists.
func (e *event) FindByName(name string) (model.Event, bool, error) {
	var event model.Event
	result := e.db.Where("name = ?", name).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Event{}, false, nil
		}
		return model.Event{}, false, translateError(result.Error)
	}

	return event, true, nil
}

func (e *event) List() ([]model.Event, error) {
	var events []model.Event
	result := e.db.Preload("Votes", orderByID).Order("id").Find(&events)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return events, nil
}

func (e *event) Delete(id uint) error {
	result := e.db.Delete(&model.Event{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}

	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
