package model

import "time"

// Subscription is the premium entitlement of an account.
type Subscription struct {
	Email     string
	Plan      string
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

// ElderlyUser is the account a relative links to through its private key.
type ElderlyUser struct {
	ID         int64
	Email      string
	FullName   string
	Phone      string
	PrivateKey string
}

// FamilyMember is a link between a relative's account and an elderly account.
type FamilyMember struct {
	ID            int64
	RelativeEmail string
	User          ElderlyUser
}
