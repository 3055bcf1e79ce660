package config

import (
	"errors"
	"testing"

	"github.com/caasmo/pkcegen/crypto"
)

func TestValidate(t *testing.T) {
	provider := func(mod func(p *OAuth2ProviderConfig)) *OAuth2ProviderConfig {
		p := &OAuth2ProviderConfig{
			ClientID: Env{Value: "client"},
			AuthURL:  "https://auth.example.com/authorize",
		}
		if mod != nil {
			mod(p)
		}
		return p
	}

	testCases := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "default",
			cfg:  *NewDefaultConfig(),
		},
		{
			name: "zero length",
			cfg:  Config{Verifier: Verifier{Length: 0}},
		},
		{
			name:    "negative length",
			cfg:     Config{Verifier: Verifier{Length: -1}},
			wantErr: ErrInvalidVerifier,
		},
		{
			name: "pkce alphabet",
			cfg:  Config{Verifier: Verifier{Length: 43, Alphabet: AlphabetPKCE}},
		},
		{
			name:    "unknown alphabet",
			cfg:     Config{Verifier: Verifier{Length: 43, Alphabet: "base32"}},
			wantErr: ErrInvalidVerifier,
		},
		{
			name: "valid provider",
			cfg:  Config{Verifier: Verifier{Length: 43}, OAuth2: provider(nil)},
		},
		{
			name: "missing client id",
			cfg: Config{Verifier: Verifier{Length: 43}, OAuth2: provider(func(p *OAuth2ProviderConfig) {
				p.ClientID = Env{}
			})},
			wantErr: ErrInvalidOAuth2,
		},
		{
			name: "empty client id env",
			cfg: Config{Verifier: Verifier{Length: 43}, OAuth2: provider(func(p *OAuth2ProviderConfig) {
				p.ClientID = Env{Name: "SOME_VAR"}
			})},
			wantErr: ErrInvalidOAuth2,
		},
		{
			name: "relative auth url",
			cfg: Config{Verifier: Verifier{Length: 43}, OAuth2: provider(func(p *OAuth2ProviderConfig) {
				p.AuthURL = "/authorize"
			})},
			wantErr: ErrInvalidOAuth2,
		},
		{
			name: "unparseable auth url",
			cfg: Config{Verifier: Verifier{Length: 43}, OAuth2: provider(func(p *OAuth2ProviderConfig) {
				p.AuthURL = "https://exa mple.com/%zz"
			})},
			wantErr: ErrInvalidOAuth2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.cfg)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	testCases := []struct {
		length int
		want   int
	}{
		{length: 0, want: 1},
		{length: 42, want: 1},
		{length: crypto.MinCodeVerifierLength, want: 0},
		{length: crypto.MaxCodeVerifierLength, want: 0},
		{length: 129, want: 1},
	}

	for _, tc := range testCases {
		got := Warnings(&Config{Verifier: Verifier{Length: tc.length}})
		if len(got) != tc.want {
			t.Errorf("Warnings(length=%d) = %v, want %d warnings", tc.length, got, tc.want)
		}
	}
}

func TestAlphabetSymbols(t *testing.T) {
	testCases := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: crypto.AlphanumericAlphabet},
		{name: AlphabetAlphanumeric, want: crypto.AlphanumericAlphabet},
		{name: AlphabetPKCE, want: crypto.PKCEAlphabet},
		{name: "hex", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := AlphabetSymbols(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("AlphabetSymbols(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("AlphabetSymbols(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
