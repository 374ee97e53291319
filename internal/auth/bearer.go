package auth

import (
	"errors"
	"strings"
)

// NotAuthenticated is the 401 detail for a request without a bearer token.
const NotAuthenticated = "not authenticated"

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RejectionDetail returns the 401 detail for a token that failed Validate or
// Logout. ok is false when err is not about the token itself.
func RejectionDetail(err error) (detail string, ok bool) {
	for _, known := range []error{ErrTokenExpired, ErrTokenRevoked, ErrInvalidToken} {
		if errors.Is(err, known) {
			return known.Error(), true
		}
	}
	return "", false
}
