package repository

// AddMemberOptions links RelativeEmail to the elderly account owning PrivateKey.
type AddMemberOptions struct {
	RelativeEmail string
	PrivateKey    string
}
