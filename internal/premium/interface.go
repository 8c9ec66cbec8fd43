package premium

import (
	"context"

	"viegrand-care/internal/model"
)

// UseCase defines the business logic interface for the premium domain.
type UseCase interface {
	Status(ctx context.Context, sc model.Scope, input StatusInput) (StatusOutput, error)
}
