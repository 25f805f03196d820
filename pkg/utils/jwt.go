package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/maheshrc27/brand-engine/internal/transfer"
)

const sessionIssuer = "brand-engine"

func GenerateSessionToken(secretKey string, session models.Session, tokenDuration time.Duration) (string, error) {
	if session.ID == "" {
		return "", errors.New("session id is empty")
	}

	now := time.Now()
	claims := transfer.SessionClaims{
		SessionID:     session.ID,
		ActiveBrandID: session.ActiveBrandID,
		ActivePostID:  session.ActivePostID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func ValidateSessionToken(secretKey, tokenString string) (*models.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &transfer.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(sessionIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*transfer.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}

	return &models.Session{
		ID:            claims.SessionID,
		ActiveBrandID: claims.ActiveBrandID,
		ActivePostID:  claims.ActivePostID,
	}, nil
}
