package client

import (
	"github.com/krakosik/voting-api/internal/dto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Clients interface {
	Database() *gorm.DB
	Close() error
}

type clients struct {
	database *gorm.DB
}

func (c clients) Database() *gorm.DB {
	return c.database
}

func (c clients) Close() error {
	sqlDB, err := c.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func NewClients(cfg dto.Config) Clients {
	database, err := NewDatabase(cfg)
	if err != nil {
		logrus.Panic(err)
	}

	return &clients{
		database: database,
	}
}
