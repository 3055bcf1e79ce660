package config

import (
	"os"
)

const (
	AlphabetAlphanumeric = "alphanumeric"
	AlphabetPKCE         = "pkce"
)

// Env is a value that can be read from an environment variable.
// A literal Value is kept if Name is empty or the variable is unset.
type Env struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

func (e *Env) Fill() {
	if e.Name == "" {
		return
	}
	if v, ok := os.LookupEnv(e.Name); ok {
		e.Value = v
	}
}

type Verifier struct {
	Length   int    `toml:"length"`
	Alphabet string `toml:"alphabet"`
}

// OAuth2ProviderConfig describes the authorization endpoint an
// authorization URL is built for. Nothing is sent to it.
type OAuth2ProviderConfig struct {
	Name        string   `toml:"name"`
	ClientID    Env      `toml:"client_id"`
	RedirectURL string   `toml:"redirect_url"`
	AuthURL     string   `toml:"auth_url"`
	Scopes      []string `toml:"scopes"`
}

func (c *OAuth2ProviderConfig) FillEnvVars() {
	c.ClientID.Fill()
}

type Config struct {
	Verifier Verifier              `toml:"verifier"`
	OAuth2   *OAuth2ProviderConfig `toml:"oauth2"`
}
