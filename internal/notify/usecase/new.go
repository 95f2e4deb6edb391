package usecase

import (
	"time"

	pkgLog "taskgen/pkg/log"
	"taskgen/pkg/webhook"
)

// implUseCase is the private implementation of notify.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	poster      webhook.Poster
	destination string
	now         func() time.Time
}

// New creates a new notify UseCase. destination may be empty; every
// notification then short-circuits into a configuration-error outcome.
func New(l pkgLog.Logger, poster webhook.Poster, destination string) *implUseCase {
	return &implUseCase{
		l:           l,
		poster:      poster,
		destination: destination,
		now:         time.Now,
	}
}

// SetClock overrides the wall clock, for tests.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
