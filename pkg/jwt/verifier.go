// Package jwt verifies access tokens issued by an OpenID provider against the
// provider's published signing keys.
package jwt

import (
	"castingagency/auth"
	"castingagency/errs"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

var (
	ErrTokenExpired    = errs.Errorf(errs.EUNAUTHORIZED, "Token expired.")
	ErrTokenInvalid    = errs.Errorf(errs.EUNAUTHORIZED, "Unable to verify authentication token.")
	ErrClaimsMalformed = errs.Errorf(errs.EUNAUTHORIZED, "Unable to parse authentication token.")
)

type Options struct {
	// Domain is the issuer host, e.g. "tenant.eu.auth0.com".
	Domain    string
	Audience  string
	Algorithm string

	// IssuerURL and JWKSURL default to values derived from Domain.
	IssuerURL string
	JWKSURL   string

	HTTPClient *http.Client
}

type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier builds a verifier that fetches signing keys lazily from the
// issuer's JWKS endpoint. ctx bounds the lifetime of the key cache.
func NewVerifier(ctx context.Context, opts Options) (*Verifier, error) {
	if opts.Audience == "" || opts.Algorithm == "" {
		return nil, fmt.Errorf("jwt: audience and algorithm are required")
	}

	issuer := opts.IssuerURL
	if issuer == "" {
		if opts.Domain == "" {
			return nil, fmt.Errorf("jwt: domain or issuer url is required")
		}
		issuer = "https://" + strings.TrimSuffix(opts.Domain, "/") + "/"
	}

	jwksURL := opts.JWKSURL
	if jwksURL == "" {
		jwksURL = strings.TrimSuffix(issuer, "/") + "/.well-known/jwks.json"
	}

	if opts.HTTPClient != nil {
		ctx = oidc.ClientContext(ctx, opts.HTTPClient)
	}

	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
	v := oidc.NewVerifier(issuer, keySet, &oidc.Config{
		ClientID:             opts.Audience,
		SupportedSigningAlgs: []string{opts.Algorithm},
	})

	return &Verifier{verifier: v}, nil
}

type permissionsClaim struct {
	Permissions []string `json:"permissions"`
}

// Verify checks signature, issuer, audience and expiry, then extracts the
// subject and permissions.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (auth.Claims, error) {
	if rawToken == "" {
		return auth.Claims{}, auth.ErrTokenMissing
	}

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		var expired *oidc.TokenExpiredError
		if errors.As(err, &expired) {
			return auth.Claims{}, ErrTokenExpired
		}
		return auth.Claims{}, ErrTokenInvalid
	}

	var pc permissionsClaim
	if err := token.Claims(&pc); err != nil {
		return auth.Claims{}, ErrClaimsMalformed
	}

	return auth.Claims{Subject: token.Subject, Permissions: pc.Permissions}, nil
}
