package service

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt. Each call to Hash uses a fresh
// random salt, so the same password hashes to different strings; comparison
// goes through bcrypt's constant-time CompareHashAndPassword.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
