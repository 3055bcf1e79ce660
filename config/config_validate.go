package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caasmo/pkcegen/crypto"
)

var (
	ErrInvalidVerifier = errors.New("invalid verifier configuration")
	ErrInvalidOAuth2   = errors.New("invalid oauth2 configuration")
)

func Validate(cfg *Config) error {
	if err := validateVerifier(&cfg.Verifier); err != nil {
		return fmt.Errorf("verifier config validation failed: %w", err)
	}
	if cfg.OAuth2 != nil {
		if err := validateOAuth2(cfg.OAuth2); err != nil {
			return fmt.Errorf("oauth2 config validation failed: %w", err)
		}
	}
	return nil
}

// Warnings lists settings that are accepted but fall outside RFC 7636.
func Warnings(cfg *Config) []string {
	var warnings []string
	n := cfg.Verifier.Length
	if n < crypto.MinCodeVerifierLength || n > crypto.MaxCodeVerifierLength {
		warnings = append(warnings, fmt.Sprintf("verifier length %d is outside the RFC 7636 range %d-%d", n, crypto.MinCodeVerifierLength, crypto.MaxCodeVerifierLength))
	}
	return warnings
}

// AlphabetSymbols maps an alphabet name to its symbols.
func AlphabetSymbols(name string) (string, error) {
	switch name {
	case "", AlphabetAlphanumeric:
		return crypto.AlphanumericAlphabet, nil
	case AlphabetPKCE:
		return crypto.PKCEAlphabet, nil
	}
	return "", fmt.Errorf("%w: unknown alphabet '%s'", ErrInvalidVerifier, name)
}

// validateVerifier rejects negative lengths and unknown alphabets.
// A length of 0 is allowed and produces an empty verifier.
func validateVerifier(v *Verifier) error {
	if v.Length < 0 {
		return fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidVerifier, v.Length)
	}
	if _, err := AlphabetSymbols(v.Alphabet); err != nil {
		return err
	}
	return nil
}

func validateOAuth2(p *OAuth2ProviderConfig) error {
	if p.ClientID.Value == "" {
		if p.ClientID.Name != "" {
			return fmt.Errorf("%w: client id environment variable %s is empty", ErrInvalidOAuth2, p.ClientID.Name)
		}
		return fmt.Errorf("%w: client id is required", ErrInvalidOAuth2)
	}

	u, err := url.Parse(p.AuthURL)
	if err != nil {
		return fmt.Errorf("%w: invalid auth_url '%s': %v", ErrInvalidOAuth2, p.AuthURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: auth_url '%s' must be an absolute URL", ErrInvalidOAuth2, p.AuthURL)
	}

	if p.RedirectURL != "" {
		if _, err := url.Parse(p.RedirectURL); err != nil {
			return fmt.Errorf("%w: invalid redirect_url '%s': %v", ErrInvalidOAuth2, p.RedirectURL, err)
		}
	}
	return nil
}
