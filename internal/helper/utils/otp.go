package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// GenerateOTP returns a 6-digit code uniformly drawn from
// [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", errors.New("failed to generate otp")
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
