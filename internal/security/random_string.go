package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	temporaryPasswordLetters  = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	temporaryPasswordDigits   = "23456789"
	TemporaryPasswordAlphabet = temporaryPasswordLetters + temporaryPasswordDigits
	minTemporaryPasswordLen   = 8
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// TemporaryPassword returns a password of at least eight characters that
// contains both a letter and a digit. Look-alike characters are excluded.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLen {
		length = minTemporaryPasswordLen
	}
	for {
		candidate, err := RandomString(length, TemporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if strings.ContainsAny(candidate, temporaryPasswordLetters) && strings.ContainsAny(candidate, temporaryPasswordDigits) {
			return candidate, nil
		}
	}
}
