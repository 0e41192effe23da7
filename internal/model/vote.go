package model

import "time"

// Vote names are unique per event, enforced by idx_votes_event_name.
type Vote struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	EventID   uint   `gorm:"not null;index;uniqueIndex:idx_votes_event_name"`
	Name      string `gorm:"not null;uniqueIndex:idx_votes_event_name"`
	Count     int    `gorm:"not null;default:0"`
}
