package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token invalid or expired")

type payload struct {
	Claims    map[string]string `json:"claims"`
	JTI       string            `json:"jti"`
	ExpiresAt int64             `json:"exp"`
}

// HMACLinkTokens signs compact url-safe tokens for links carried in
// email: verification and review links. The format is
// base64url(payload) + "." + base64url(hmac-sha256 signature).
type HMACLinkTokens struct {
	secret []byte
}

func NewHMACLinkTokens(secret string) *HMACLinkTokens {
	return &HMACLinkTokens{
		secret: []byte(secret),
	}
}

func (t *HMACLinkTokens) Encode(claims map[string]string, ttl time.Duration) (string, error) {
	body, err := json.Marshal(payload{
		Claims:    claims,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("encode link token: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(body)
	return encoded + "." + t.sign(encoded), nil
}

func (t *HMACLinkTokens) Decode(token string) (map[string]string, string, error) {
	encoded, sig, found := strings.Cut(token, ".")
	if !found {
		return nil, "", ErrInvalidToken
	}

	if !hmac.Equal([]byte(t.sign(encoded)), []byte(sig)) {
		return nil, "", ErrInvalidToken
	}

	body, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", ErrInvalidToken
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, "", ErrInvalidToken
	}

	if time.Now().Unix() >= p.ExpiresAt {
		return nil, "", ErrInvalidToken
	}

	return p.Claims, p.JTI, nil
}

func (t *HMACLinkTokens) sign(encoded string) string {
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
