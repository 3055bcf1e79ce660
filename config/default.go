package config

import "github.com/caasmo/pkcegen/crypto"

// NewDefaultConfig returns the configuration used when no file is given:
// a 43 character alphanumeric verifier and no provider.
func NewDefaultConfig() *Config {
	return &Config{
		Verifier: Verifier{
			Length:   crypto.OauthCodeVerifierLength,
			Alphabet: AlphabetAlphanumeric,
		},
	}
}
