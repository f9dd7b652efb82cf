package usecase

import (
	"metaads-srv/internal/account"
	"metaads-srv/internal/account/repository"
	"metaads-srv/pkg/log"
)

type implUseCase struct {
	repo repository.AccountRepository
	l    log.Logger
}

// New creates a new account UseCase implementation.
func New(repo repository.AccountRepository, l log.Logger) account.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
