package postgre

import (
	"database/sql"

	"metaads-srv/internal/insights/repository"
	"metaads-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.InsightsRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
