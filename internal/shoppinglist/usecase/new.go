package usecase

import (
	"voice-shopping-list/internal/shoppinglist/repository"
	"voice-shopping-list/pkg/log"
)

// implUseCase is the private implementation of shoppinglist.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new shopping list UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
