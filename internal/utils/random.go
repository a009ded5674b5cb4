package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCode returns n uppercase alphanumeric characters from crypto/rand.
func RandomCode(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// GenerateLoginCode returns the 8-character public login code for an event.
func GenerateLoginCode() (string, error) {
	return RandomCode(8)
}

// GenerateEventID returns the public human-readable event code, e.g.
// EVT-1700000000000-A1B2C3D.
func GenerateEventID() (string, error) {
	suffix, err := RandomCode(7)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EVT-%d-%s", time.Now().UnixMilli(), suffix), nil
}

// GenerateOTP returns a 4-digit numeric code uniformly random in [1000, 9999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
