// Package shorten truncates strings to a maximum length while keeping
// truncated results distinguishable from each other.
package shorten

import (
	"encoding/hex"
	"unicode/utf8"

	"golang.org/x/crypto/sha3"
)

const (
	DefaultMaxLength = 8
	DefaultSeparator = "-"

	// DigestHexLength is the length of the suffix appended to a truncated stub.
	DigestHexLength = digestBytes * 2

	digestBytes = 2
)

// String shortens input with the default max length and separator.
func String(input string) string {
	return ShortButUnique(input, DefaultMaxLength, DefaultSeparator)
}

// ShortButUnique returns input unchanged when it fits in maxLength runes.
// Otherwise it keeps the first maxLength runes as a stub and appends the
// separator and a digest of the discarded remainder:
//
//	stub + separator + 4 lowercase hex characters
//
// A negative maxLength is treated as zero, which yields a digest-only result.
//
// The digest is for telling apart names that share a stub. It is not a
// security primitive.
func ShortButUnique(input string, maxLength int, separator string) string {
	maxLength = max(maxLength, 0)

	if utf8.RuneCountInString(input) <= maxLength {
		return input
	}

	cut := runeOffset(input, maxLength)

	return input[:cut] + separator + Digest(input[cut:])
}

// Digest returns the SHAKE256 digest of remainder, two bytes long, hex encoded.
func Digest(remainder string) string {
	sum := make([]byte, digestBytes)
	sha3.ShakeSum256(sum, []byte(remainder))

	return hex.EncodeToString(sum)
}

// runeOffset returns the byte offset of the n-th rune in s.
func runeOffset(s string, n int) int {
	count := 0

	for offset := range s {
		if count == n {
			return offset
		}

		count++
	}

	return len(s)
}
