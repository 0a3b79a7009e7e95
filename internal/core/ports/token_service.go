package ports

// TokenClaims is the identity carried inside a verified bearer token.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Verify returns an error for any invalid input (bad signature, malformed
// structure, expired) and never partial claims; callers decide the
// HTTP-level consequence.
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher produces and checks salted one-way password hashes.
// Verify never fails loudly on malformed hash input; it reports false.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
