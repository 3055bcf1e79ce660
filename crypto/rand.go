package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// Defined in RFC 7636 (PKCE) as the unreserved characters a code
	// verifier may contain: A-Z, a-z, 0-9, and the symbols -, ., _, ~.
	PKCEAlphabet = AlphanumericAlphabet + "-._~"
)

var (
	// ErrEntropyUnavailable is returned when the random source cannot be read.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("invalid length")
)

// RandomString returns a string of the given length where every character is
// chosen independently and uniformly from alphabet, using crypto/rand.
//
// The alphabet must hold between 1 and 256 single-byte symbols; anything else
// is a programming error and panics. A length of 0 yields "".
func RandomString(length int, alphabet string) (string, error) {
	return RandomStringFrom(rand.Reader, length, alphabet)
}

// RandomStringFrom is RandomString with an explicit random source.
//
// Bytes are mapped to symbols by rejection sampling: a byte is only used if it
// falls below the largest multiple of len(alphabet) that fits in a byte, so
// every symbol has the same probability.
func RandomStringFrom(r io.Reader, length int, alphabet string) (string, error) {
	n := len(alphabet)
	if n == 0 || n > 256 {
		panic(fmt.Sprintf("crypto: alphabet must have between 1 and 256 symbols, got %d", n))
	}
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if length == 0 {
		return "", nil
	}

	limit := 256 - 256%n
	out := make([]byte, length)
	// a quarter extra covers the rejected bytes for most alphabets in one read
	buf := make([]byte, length+length/4+1)

	i := 0
	for i < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out[i] = alphabet[int(b)%n]
			i++
			if i == length {
				break
			}
		}
	}

	return string(out), nil
}
