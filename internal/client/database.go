package client

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/krakosik/voting-api/internal/dto"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// NewDatabase opens the configured database. Driver errors such as unique
// violations are translated to gorm's portable errors.
func NewDatabase(cfg dto.Config) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormLogLevel(),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s database: %v", dto.ErrInternalFailure, cfg.DatabaseDriver, err)
	}

	if cfg.DatabaseDriver == dto.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
		}
		// sqlite serializes writers and gives every connection its own
		// in-memory database.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func newDialector(cfg dto.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case dto.DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.DatabaseURL)), nil
	case dto.DriverPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", dto.ErrInvalidInput, cfg.DatabaseDriver)
	}
}

// sqliteDSN enables foreign keys so that deleting an event cascades to its votes.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

func gormLogLevel() logger.LogLevel {
	switch logrus.GetLevel() {
	case logrus.TraceLevel:
		return logger.Info
	case logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
