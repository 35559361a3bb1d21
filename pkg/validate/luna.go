package validate

import (
	"math/rand"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

const referralCodeLength = 10

// IsLuna reports whether s is a string of digits with a valid Luhn check digit.
func IsLuna(s string) bool {
	return s != "" && goluhn.Validate(s) == nil
}

// NewReferralCode returns a random numeric code whose last digit is a Luhn check digit.
func NewReferralCode() string {
	payload := make([]byte, 0, referralCodeLength)
	payload = append(payload, byte('1'+rand.Intn(9)))
	for len(payload) < referralCodeLength-1 {
		payload = append(payload, byte('0'+rand.Intn(10)))
	}
	for d := 0; d <= 9; d++ {
		code := string(payload) + strconv.Itoa(d)
		if IsLuna(code) {
			return code
		}
	}
	// unreachable: exactly one check digit satisfies Luhn
	return ""
}
