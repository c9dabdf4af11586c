// Package identity adapts external OpenID Connect providers to
// model.IdentityProvider.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zitadel/oidc/v3/pkg/client/rp"
	"github.com/zitadel/oidc/v3/pkg/oidc"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// GoogleConfig holds the OAuth client registration.
type GoogleConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

// Google is a relying party for Google sign-in.
type Google struct {
	rp rp.RelyingParty
}

var _ model.IdentityProvider = (*Google)(nil)

// NewGoogle discovers the issuer configuration and builds the relying party.
// The state nonce is kept by the HTTP layer, so no cookie handler is set here.
func NewGoogle(ctx context.Context, cfg GoogleConfig) (*Google, error) {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, oidc.ScopeEmail, oidc.ScopeProfile}
	}

	relyingParty, err := rp.NewRelyingPartyOIDC(ctx, cfg.Issuer, cfg.ClientID, cfg.ClientSecret, cfg.RedirectURI,
		scopes, rp.WithVerifierOpts(rp.WithIssuedAtMaxAge(time.Minute)))
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC relying party: %w", err)
	}

	return &Google{rp: relyingParty}, nil
}

// AuthCodeURL returns the provider authorization URL carrying state.
func (g *Google) AuthCodeURL(state string) string {
	return rp.AuthURL(state, g.rp)
}

// Exchange redeems an authorization code and returns the verified identity.
func (g *Google) Exchange(ctx context.Context, code string) (model.ExternalIdentity, error) {
	tokens, err := rp.CodeExchange[*oidc.IDTokenClaims](ctx, code, g.rp)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	return identityFromClaims(tokens.IDTokenClaims)
}

func identityFromClaims(claims *oidc.IDTokenClaims) (model.ExternalIdentity, error) {
	if claims == nil {
		return model.ExternalIdentity{}, errors.New("id token claims are missing")
	}

	return model.ExternalIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: bool(claims.EmailVerified),
		Name:          claims.Name,
	}, nil
}
