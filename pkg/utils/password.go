package utils

import "golang.org/x/crypto/bcrypt"

// VerifyResult classifies the outcome of a password check.
type VerifyResult int

const (
	PasswordMismatch VerifyResult = iota
	PasswordOK
	// PasswordOKNeedsRehash means the password matched but the stored hash
	// was produced with a lower cost than the current default and should be
	// re-hashed on next write.
	PasswordOKNeedsRehash
)

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func VerifyPassword(hashed, pw string) VerifyResult {
	if bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) != nil {
		return PasswordMismatch
	}
	cost, err := bcrypt.Cost([]byte(hashed))
	if err == nil && cost < bcrypt.DefaultCost {
		return PasswordOKNeedsRehash
	}
	return PasswordOK
}
