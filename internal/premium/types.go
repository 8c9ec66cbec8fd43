package premium

import "viegrand-care/internal/model"

// StatusInput selects the account to report on. Empty means the caller.
type StatusInput struct {
	Email string
}

// StatusOutput is the subscription plus the values the app displays.
type StatusOutput struct {
	Subscription  model.Subscription
	DaysRemaining int
	Active        bool
}

// StatusActive is the backend status of a paid, running subscription.
const StatusActive = "active"
