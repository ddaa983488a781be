package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = fmt.Errorf("%w: token has expired", ErrInvalidToken)
	ErrWrongToken   = fmt.Errorf("%w: wrong token type", ErrInvalidToken)
)

type tokenSettings struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

var settings = tokenSettings{
	accessTTL:  15 * time.Minute,
	refreshTTL: 12 * time.Hour,
}

// InitJWT sets the signing key and token lifetimes. It must run before any
// token is issued or verified.
func InitJWT(secret string, accessTTL, refreshTTL time.Duration) {
	settings = tokenSettings{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateTokens issues an access and a refresh token whose subject is the username.
func GenerateTokens(subject string) (string, string, error) {
	access, err := signToken(subject, accessTokenType, settings.accessTTL)
	if err != nil {
		return "", "", err
	}

	refresh, err := signToken(subject, refreshTokenType, settings.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func signToken(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(settings.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return settings.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveSubject returns the username carried by a valid access token.
func ResolveSubject(tokenString string) (string, error) {
	return subjectOf(tokenString, accessTokenType)
}

// RefreshTokens trades a valid refresh token for a new token pair.
func RefreshTokens(refreshToken string) (string, string, error) {
	subject, err := subjectOf(refreshToken, refreshTokenType)
	if err != nil {
		return "", "", err
	}
	return GenerateTokens(subject)
}

func subjectOf(tokenString, wantType string) (string, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return "", ErrWrongToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return subject, nil
}
