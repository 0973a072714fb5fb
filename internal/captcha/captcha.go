// Package captcha produces the short numeric challenges shown on the
// registration form.
package captcha

import (
	"math/rand"
	"strconv"
)

const (
	min = 1000
	max = 9999
)

// New returns a uniformly random 4-digit code as a string, so it can be
// compared byte-for-byte against form input.
func New() string {
	return strconv.Itoa(min + rand.Intn(max-min+1))
}
