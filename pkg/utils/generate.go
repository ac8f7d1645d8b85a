package utils

import (
	"math/rand"
	"strconv"
)

// GenerateResetCode returns a 6-digit verification code drawn uniformly
// from [100000, 999999].
func GenerateResetCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
