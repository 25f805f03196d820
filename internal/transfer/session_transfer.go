package transfer

import "github.com/golang-jwt/jwt/v5"

type SessionClaims struct {
	SessionID     string `json:"sid"`
	ActiveBrandID string `json:"brand,omitempty"`
	ActivePostID  string `json:"post,omitempty"`
	jwt.RegisteredClaims
}
