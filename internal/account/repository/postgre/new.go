package postgre

import (
	"database/sql"

	"metaads-srv/internal/account/repository"
	"metaads-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.AccountRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
