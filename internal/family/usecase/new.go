package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"viegrand-care/internal/family"
	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/model"
	pkgLog "viegrand-care/pkg/log"
)

const (
	cacheSize = 512
	cacheTTL  = 5 * time.Minute
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	users *expirable.LRU[string, model.ElderlyUser]
}

// New creates a new family UseCase. Lookups are cached by private key.
func New(l pkgLog.Logger, repo repository.Repository) family.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		users: expirable.NewLRU[string, model.ElderlyUser](cacheSize, nil, cacheTTL),
	}
}
