package model

// SessionResult is returned by every sign-in path: the resolved user and a
// freshly issued session token.
type SessionResult struct {
	User  User
	Token string
}

// RegisterParams contains parameters to register a local account.
type RegisterParams struct {
	Email    string
	Password string
	FullName string
}
