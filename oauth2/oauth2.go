package oauth2

import (
	"github.com/caasmo/pkcegen/config"
	"github.com/caasmo/pkcegen/crypto"
	xoauth2 "golang.org/x/oauth2"
)

const (
	ParamCodeChallenge       = "code_challenge"
	ParamCodeChallengeMethod = "code_challenge_method"
)

// AuthCodeURL returns the authorization URL a user would be sent to for
// provider, carrying state and the PKCE challenge of pair.
// It only builds the URL; no request is made.
func AuthCodeURL(provider *config.OAuth2ProviderConfig, state string, pair crypto.Pair) string {
	oauth2Config := xoauth2.Config{
		ClientID:    provider.ClientID.Value,
		RedirectURL: provider.RedirectURL,
		Scopes:      provider.Scopes,
		Endpoint: xoauth2.Endpoint{
			AuthURL: provider.AuthURL,
		},
	}

	return oauth2Config.AuthCodeURL(state,
		xoauth2.SetAuthURLParam(ParamCodeChallenge, pair.Challenge),
		xoauth2.SetAuthURLParam(ParamCodeChallengeMethod, pair.Method),
	)
}
