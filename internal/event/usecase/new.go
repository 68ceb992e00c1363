package usecase

import (
	"time"

	"github-activity/internal/event/repository"
	"github-activity/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock overrides the receipt clock.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new event UseCase implementation.
func New(repo repository.Repository, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
