package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// The OAuth2 specification (RFC 6749) doesn’t mandate a specific length. It
// recommends a random, unguessable string.
// At least 16 characters, though 32 to 64 characters is common
// for better uniqueness and security.
const Oauth2StateLength = 32

// Defined in RFC 7636 (PKCE). Its length must be between 43 and 128 characters.
const (
	OauthCodeVerifierLength = 43
	MinCodeVerifierLength   = 43
	MaxCodeVerifierLength   = 128
)

// PKCECodeChallengeMethod is the only challenge method produced here.
const PKCECodeChallengeMethod = "S256"

// ErrEncoding is returned when a code verifier contains non-ASCII characters.
var ErrEncoding = errors.New("code verifier is not ASCII")

// Pair holds a code verifier and the challenge derived from it.
type Pair struct {
	Verifier  string `json:"code_verifier"`
	Challenge string `json:"code_challenge"`
	Method    string `json:"code_challenge_method"`
}

// The state parameter helps prevent Cross-Site Request Forgery (CSRF) attacks
// by linking the authorization request to its callback.
// Should be URL-safe, Here alphanumeric characters.
func Oauth2State() (string, error) {
	return RandomString(Oauth2StateLength, AlphanumericAlphabet)
}

// Oauth2CodeVerifier returns a 43 character verifier drawn from A-Z a-z 0-9.
// Some providers reject the extra RFC 7636 symbols, so they are left out.
func Oauth2CodeVerifier() (string, error) {
	return CodeVerifier(OauthCodeVerifierLength)
}

// CodeVerifier returns an alphanumeric verifier of the given length.
func CodeVerifier(length int) (string, error) {
	return RandomString(length, AlphanumericAlphabet)
}

// S256Challenge derives the code challenge of verifier:
// BASE64URL(SHA256(ASCII(verifier))) without padding.
func S256Challenge(verifier string) (string, error) {
	for i := 0; i < len(verifier); i++ {
		if verifier[i] > unicode.MaxASCII {
			return "", fmt.Errorf("%w: byte 0x%02x at offset %d", ErrEncoding, verifier[i], i)
		}
	}

	sum := sha256.Sum256([]byte(verifier))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum[:]), "="), nil
}

// VerifyS256Challenge reports whether challenge was derived from verifier.
func VerifyS256Challenge(verifier, challenge string) bool {
	want, err := S256Challenge(verifier)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(challenge)) == 1
}

// NewPKCEPair generates a verifier of the default length and its challenge.
func NewPKCEPair() (Pair, error) {
	return NewPKCEPairLength(OauthCodeVerifierLength)
}

// NewPKCEPairLength generates a verifier of the given length and its challenge.
func NewPKCEPairLength(length int) (Pair, error) {
	return NewPKCEPairAlphabet(length, AlphanumericAlphabet)
}

// NewPKCEPairAlphabet is NewPKCEPairLength with a custom verifier alphabet.
// The alphabet must be ASCII.
func NewPKCEPairAlphabet(length int, alphabet string) (Pair, error) {
	verifier, err := RandomString(length, alphabet)
	if err != nil {
		return Pair{}, err
	}
	challenge, err := S256Challenge(verifier)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		Verifier:  verifier,
		Challenge: challenge,
		Method:    PKCECodeChallengeMethod,
	}, nil
}
