package identity

import (
	"os"
	"os/user"

	"github.com/renato0307/flowpomo/internal/ports"
)

// Static implements ports.IdentityProvider for a fixed user
type Static struct {
	userID string
}

// Verify interface compliance at compile time
var _ ports.IdentityProvider = Static{}

// NewStatic returns a provider for userID; an empty id means nobody is signed in
func NewStatic(userID string) Static {
	return Static{userID: userID}
}

// Anonymous returns a provider that never reports a user
func Anonymous() Static {
	return Static{}
}

// UserID implements ports.IdentityProvider
func (s Static) UserID() (string, bool) {
	return s.userID, s.userID != ""
}

// Resolve picks the local user with precedence:
// flag value > FLOWPOMO_USER env var > settings value > OS user name
func Resolve(flagValue, settingsValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv("FLOWPOMO_USER"); envValue != "" {
		return envValue
	}
	if settingsValue != "" {
		return settingsValue
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return ""
}
