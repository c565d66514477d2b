package postgre

import (
	"database/sql"

	"shadergen-srv/internal/library/repository"
	"shadergen-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory
func New(l log.Logger, db *sql.DB) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
