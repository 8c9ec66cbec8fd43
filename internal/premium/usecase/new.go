package usecase

import (
	"time"

	"viegrand-care/internal/premium"
	"viegrand-care/internal/premium/repository"
	"viegrand-care/pkg/datemath"
	pkgLog "viegrand-care/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new premium UseCase. now defaults to time.Now.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, now func() time.Time) premium.UseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      now,
	}
}
