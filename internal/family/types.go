package family

import "viegrand-care/internal/model"

// ResolveQRInput is the raw text decoded from a scanned QR code.
type ResolveQRInput struct {
	Data string
}

// ResolveQROutput is the elderly account the QR code points to.
type ResolveQROutput struct {
	PrivateKey string
	User       model.ElderlyUser
}

// AddMemberInput is a scanned QR payload or bare private key. RelativeEmail
// defaults to the caller's email.
type AddMemberInput struct {
	Data          string
	RelativeEmail string
}

// AddMemberOutput is the created family link.
type AddMemberOutput struct {
	Member model.FamilyMember
}
