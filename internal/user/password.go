package user

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the salted bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash against a candidate plaintext.
// bcrypt's comparison is constant-time.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// SetPassword hashes the plaintext and stores only the hash. The
// plaintext is discarded; there is no way to read a password back off a
// User.
func (u *User) SetPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword reports whether the candidate matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return CheckPassword(u.PasswordHash, password) == nil
}
