package family

import (
	"context"

	"viegrand-care/internal/model"
)

// UseCase defines the business logic interface for linking relatives.
type UseCase interface {
	// ResolveQR extracts the private key from a QR payload and looks up the
	// elderly account it belongs to.
	ResolveQR(ctx context.Context, sc model.Scope, input ResolveQRInput) (ResolveQROutput, error)

	// AddMember links the caller (or input.RelativeEmail) to the elderly
	// account a scanned QR payload points to.
	AddMember(ctx context.Context, sc model.Scope, input AddMemberInput) (AddMemberOutput, error)

	RemoveMember(ctx context.Context, sc model.Scope, id int64) error
}
