package spotify

import "os"

// Environment variables consulted when credentials are not passed explicitly.
const (
	EnvClientID     = "SPOTIFY_ID"
	EnvClientSecret = "SPOTIFY_SECRET"
)

// Credentials identify an application to the Spotify accounts service.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// ResolveCredentials returns the credentials to use for the client
// credentials flow.
//
// Explicit non-empty values are used as given. Any missing value is read
// through lookup from SPOTIFY_ID or SPOTIFY_SECRET. A nil lookup reads the
// process environment. Returns an ErrConfiguration error if either value is
// still empty.
func ResolveCredentials(clientID, clientSecret string, lookup func(string) (string, bool)) (Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if clientID == "" {
		clientID, _ = lookup(EnvClientID)
	}
	if clientSecret == "" {
		clientSecret, _ = lookup(EnvClientSecret)
	}

	if clientID == "" {
		return Credentials{}, configError("client id is required (set %s)", EnvClientID)
	}
	if clientSecret == "" {
		return Credentials{}, configError("client secret is required (set %s)", EnvClientSecret)
	}

	return Credentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}
