package auth

import (
	"castingagency/errs"
	"slices"
	"strings"
)

// Permissions understood by the API.
const (
	GetActors    = "get:actors"
	PostActors   = "post:actors"
	PatchActors  = "patch:actors"
	DeleteActors = "delete:actors"
	GetMovies    = "get:movies"
	PostMovies   = "post:movies"
	PatchMovies  = "patch:movies"
	DeleteMovies = "delete:movies"
)

var (
	ErrHeaderMissing      = errs.Errorf(errs.EUNAUTHORIZED, "Authorization header is expected.")
	ErrHeaderScheme       = errs.Errorf(errs.EUNAUTHORIZED, "Authorization header must start with \"Bearer\".")
	ErrTokenMissing       = errs.Errorf(errs.EUNAUTHORIZED, "Token not found.")
	ErrHeaderMalformed    = errs.Errorf(errs.EUNAUTHORIZED, "Authorization header must be bearer token.")
	ErrPermissionsMissing = errs.Errorf(errs.EBADREQUEST, "Permissions not included in JWT.")
	ErrPermissionDenied   = errs.Errorf(errs.EUNAUTHORIZED, "Permission not found.")
)

// Claims is what the API needs from a verified token.
type Claims struct {
	Subject string
	// Permissions is nil when the token has no permissions claim at all.
	Permissions []string
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", ErrHeaderMissing
	}

	if !strings.EqualFold(parts[0], "bearer") {
		return "", ErrHeaderScheme
	}

	switch {
	case len(parts) == 1:
		return "", ErrTokenMissing
	case len(parts) > 2:
		return "", ErrHeaderMalformed
	}

	return parts[1], nil
}

// CheckPermission reports whether claims grant permission.
func CheckPermission(claims Claims, permission string) error {
	if claims.Permissions == nil {
		return ErrPermissionsMissing
	}

	if !slices.Contains(claims.Permissions, permission) {
		return ErrPermissionDenied
	}

	return nil
}
