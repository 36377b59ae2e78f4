// Package token builds signed LiveKit room access tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotConfigured is returned when the LiveKit API key or secret is missing.
// Callers surface it as a server configuration failure, not a client error.
var ErrNotConfigured = errors.New("LiveKit credentials not configured")

const (
	// tokenTTL is the validity window of an issued token.
	tokenTTL = 15 * time.Minute
	// clockSkew backdates nbf to tolerate small clock drift between the
	// backend and the media server.
	clockSkew = 5 * time.Second
)

// videoGrant is the LiveKit room permission block. All grants are issued
// wide-open; room-level restrictions are the media server's concern.
type videoGrant struct {
	Room           string `json:"room"`
	RoomJoin       bool   `json:"roomJoin"`
	CanPublish     bool   `json:"canPublish"`
	CanSubscribe   bool   `json:"canSubscribe"`
	CanPublishData bool   `json:"canPublishData"`
}

// accessClaims is the full claim set embedded in a signed token.
type accessClaims struct {
	Video videoGrant `json:"video"`
	jwt.RegisteredClaims
}

// Builder signs room access tokens with the configured LiveKit credentials.
type Builder struct {
	apiKey    string
	apiSecret string
	serverURL string

	now func() time.Time
}

// NewBuilder creates a Builder. serverURL is passed through verbatim in
// Build's response; key and secret are only validated at Build time so an
// unconfigured service can still boot.
func NewBuilder(apiKey, apiSecret, serverURL string) *Builder {
	return &Builder{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		serverURL: serverURL,
		now:       time.Now,
	}
}

// Build returns the LiveKit server URL and a signed HS256 token granting
// identity full participation in room. The token is valid from now-5s
// (clock-skew tolerance) until now+15m.
func (b *Builder) Build(room, identity string) (url, signed string, err error) {
	if b.apiKey == "" || b.apiSecret == "" {
		return "", "", ErrNotConfigured
	}

	now := b.now()
	claims := accessClaims{
		Video: videoGrant{
			Room:           room,
			RoomJoin:       true,
			CanPublish:     true,
			CanSubscribe:   true,
			CanPublishData: true,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    b.apiKey,
			Subject:   identity,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			NotBefore: jwt.NewNumericDate(now.Add(-clockSkew)),
		},
	}

	signed, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(b.apiSecret))
	if err != nil {
		return "", "", err
	}
	return b.serverURL, signed, nil
}
