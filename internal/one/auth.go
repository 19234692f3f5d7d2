package one

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultEndpoint is the XML-RPC endpoint used when neither the endpoint
// flag nor ONE_XMLRPC is set.
const DefaultEndpoint = "http://localhost:2633/RPC2"

// Credentials identify the OpenNebula user every RPC authenticates as.
type Credentials struct {
	Username string
	Password string
	Endpoint string
}

// LoadCredentials builds credentials from the environment. The auth pair
// comes from ONE_AUTH, which holds either the path to an auth file or the
// literal "username:password" string; failing that, ~/.one/one_auth is
// read. A non-empty endpoint argument takes precedence over ONE_XMLRPC,
// and DefaultEndpoint is the fallback when both are empty.
func LoadCredentials(endpoint string) (Credentials, error) {
	auth, err := authString()
	if err != nil {
		return Credentials{}, err
	}
	username, password, err := splitAuth(auth)
	if err != nil {
		return Credentials{}, err
	}
	if endpoint == "" {
		endpoint = os.Getenv("ONE_XMLRPC")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return Credentials{
		Username: username,
		Password: password,
		Endpoint: endpoint,
	}, nil
}

// Session returns the auth token OpenNebula expects as the first parameter
// of every call.
func (c Credentials) Session() string {
	return c.Username + ":" + c.Password
}

func authString() (string, error) {
	if auth, ok := os.LookupEnv("ONE_AUTH"); ok {
		// ONE_AUTH is either a path to an auth file or the auth string
		// itself.
		if _, err := os.Stat(auth); err == nil {
			content, err := os.ReadFile(auth)
			if err != nil {
				return "", fmt.Errorf("reading ONE_AUTH file: %w", err)
			}
			return strings.TrimSpace(string(content)), nil
		}
		return auth, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".one", "one_auth")
		if content, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(content)), nil
		}
	}
	return "", errors.New("no OpenNebula credentials found: set ONE_AUTH or create ~/.one/one_auth")
}

// splitAuth splits a "username:password" pair on the first colon; the
// password itself may contain colons.
func splitAuth(auth string) (username, password string, err error) {
	username, password, found := strings.Cut(auth, ":")
	if !found {
		return "", "", errors.New("malformed auth string: expected 'username:password'")
	}
	return username, password, nil
}
