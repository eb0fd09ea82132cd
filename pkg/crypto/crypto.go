package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for stored credentials
var PasswordCost = bcrypt.DefaultCost

func HashPassword(password string) (hashedPassword string, err error) {
	pwd, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("HashPassword error: %w", err)
	}

	return string(pwd), nil
}

func CheckPasswordHash(password string, hash string) (isValid bool) {
	if hash == "" {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false
	}
	return true
}

// GenerateDigits returns a uniformly random string of n decimal digits
func GenerateDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("GenerateDigits: invalid length %d", n)
	}
	out := make([]byte, n)
	ten := big.NewInt(10)
	for i := range out {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("GenerateDigits error: %w", err)
		}
		out[i] = byte('0' + d.Int64())
	}
	return string(out), nil
}
