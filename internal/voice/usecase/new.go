package usecase

import (
	"time"

	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/pkg/log"
)

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	l     log.Logger
	lists shoppinglist.UseCase

	// now is the clock used to resolve "today". Overridable in tests.
	now func() time.Time
}

// New creates a new voice UseCase implementation on top of the
// shopping list domain.
func New(l log.Logger, lists shoppinglist.UseCase) *implUseCase {
	return &implUseCase{
		l:     l,
		lists: lists,
		now:   time.Now,
	}
}
