package user

// Principal identifies the authenticated caller of a request. SessionID
// keys the per-session onboarding state; it comes from the account
// service's token introspection.
type Principal struct {
	UserID    string
	SessionID string
	Email     string
}
