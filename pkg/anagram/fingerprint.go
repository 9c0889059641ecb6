// pkg/anagram/fingerprint.go
package anagram

import "strings"

// Normalize keeps only ASCII letters and lowercases them.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c, ok := foldLetter(s[i]); ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Fingerprint multiplies the primes of every ASCII letter in word and counts
// the letters. Other bytes are skipped, so raw text gives the same result as
// its normalized form. The product wraps on overflow.
func Fingerprint(word string) (uint32, int) {
	fp := uint32(1)
	count := 0
	for i := 0; i < len(word); i++ {
		c, ok := foldLetter(word[i])
		if !ok {
			continue
		}
		fp *= letterPrimes[c-'a']
		count++
	}
	return fp, count
}

func foldLetter(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	}
	return 0, false
}
