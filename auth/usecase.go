package auth

import "context"

type Service interface {
	// Authorize verifies the bearer token in header and checks that it grants
	// permission.
	Authorize(ctx context.Context, header, permission string) (Claims, error)
}

// TokenVerifier checks a raw token's signature and registered claims.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (Claims, error)
}

type Usecase struct {
	verifier TokenVerifier
}

func NewUsecase(verifier TokenVerifier) *Usecase {
	return &Usecase{verifier: verifier}
}

func (uc *Usecase) Authorize(ctx context.Context, header, permission string) (Claims, error) {
	raw, err := BearerToken(header)
	if err != nil {
		return Claims{}, err
	}

	claims, err := uc.verifier.Verify(ctx, raw)
	if err != nil {
		return Claims{}, err
	}

	if err := CheckPermission(claims, permission); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
