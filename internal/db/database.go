package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/types"
	"github.com/yungbote/studyforge-backend/internal/utils"
)

// DatabaseService owns the gorm handle. Postgres is the deployment target;
// sqlite exists for local runs without a server, selected via DB_DRIVER.
type DatabaseService struct {
	db     *gorm.DB
	log    *logger.Logger
	driver string
}

func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	driver := utils.GetEnv("DB_DRIVER", "postgres", log)
	var (
		handle *gorm.DB
		err    error
	)
	switch driver {
	case "postgres":
		handle, err = openPostgres(log)
	case "sqlite":
		handle, err = openSQLite(log)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", driver)
	}
	if err != nil {
		return nil, err
	}

	serviceLog.Info("Database connected", "driver", driver)
	return &DatabaseService{db: handle, log: serviceLog, driver: driver}, nil
}

func openPostgres(log *logger.Logger) (*gorm.DB, error) {
	host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	port := utils.GetEnv("POSTGRES_PORT", "5432", log)
	user := utils.GetEnv("POSTGRES_USER", "postgres", log)
	password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	name := utils.GetEnv("POSTGRES_NAME", "studyforge", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
	handle, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := handle.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}
	return handle, nil
}

func openSQLite(log *logger.Logger) (*gorm.DB, error) {
	path := utils.GetEnv("SQLITE_PATH", "studyforge.db", log)
	handle, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	return handle, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Course{},
		&types.CourseModule{},
		&types.Roadmap{},
		&types.RoadmapMilestone{},
		&types.GenerationJob{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}

func (s *DatabaseService) Driver() string {
	return s.driver
}
