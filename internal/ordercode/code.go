// Package ordercode generates the pickup codes customers use to retrieve
// their orders. Codes are short and human-readable; they are not guaranteed
// globally unique, so lookups treat anything but exactly one match as not found.
package ordercode

import (
	"crypto/rand"
)

const (
	Length  = 6
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is broken
		panic(err)
	}
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return string(buf)
}
