package model

import "context"

// ExternalIdentity is the identity assertion returned by the external provider
// after a successful authorization-code exchange.
type ExternalIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// IdentityProvider drives the authorization-code flow against an external IdP.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (ExternalIdentity, error)
}
