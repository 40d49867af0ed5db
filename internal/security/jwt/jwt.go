// Package jwt handles signed token issuance and validation.
package jwt

import (
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultAccessTokenExpire  = time.Minute * 15
	DefaultRefreshTokenExpire = time.Hour * 24 * 7

	ErrNeedTokenProvider = TokenError("cannot sign token without token provider")
	ErrInvalidToken      = TokenError("invalid token")
	ErrTokenParsing      = TokenError("token parsing error")

	subjectAccess  = "access"
	subjectRefresh = "refresh"
)

// TokenConfig overrides the default token lifetimes.
type TokenConfig struct {
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// TokenManager handles JWT token operations
type TokenManager struct {
	key        string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a new TokenManager instance
func NewTokenManager(key string, cfg ...*TokenConfig) *TokenManager {
	tm := &TokenManager{
		key:        key,
		accessTTL:  DefaultAccessTokenExpire,
		refreshTTL: DefaultRefreshTokenExpire,
	}
	if len(cfg) > 0 && cfg[0] != nil {
		if cfg[0].AccessTokenExpiry > 0 {
			tm.accessTTL = cfg[0].AccessTokenExpiry
		}
		if cfg[0].RefreshTokenExpiry > 0 {
			tm.refreshTTL = cfg[0].RefreshTokenExpiry
		}
	}
	return tm
}

func (jtm *TokenManager) validateKey() error {
	if jtm.key == "" {
		return ErrNeedTokenProvider
	}
	return nil
}

func (jtm *TokenManager) generateToken(jti string, payload map[string]any, subject string, expire time.Duration) (string, error) {
	if err := jtm.validateKey(); err != nil {
		return "", err
	}

	claims := jwtstd.MapClaims{
		"jti":     jti,
		"sub":     subject,
		"payload": payload,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(expire).Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(jtm.key))
}

// GenerateAccessToken generates an access token.
func (jtm *TokenManager) GenerateAccessToken(jti string, payload map[string]any) (string, error) {
	return jtm.generateToken(jti, payload, subjectAccess, jtm.accessTTL)
}

// GenerateRefreshToken generates a refresh token.
func (jtm *TokenManager) GenerateRefreshToken(jti string, payload map[string]any) (string, error) {
	return jtm.generateToken(jti, payload, subjectRefresh, jtm.refreshTTL)
}

// ValidateToken validates a JWT token
func (jtm *TokenManager) ValidateToken(tokenString string) (*jwtstd.Token, error) {
	if err := jtm.validateKey(); err != nil {
		return nil, err
	}

	return jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		if _, ok := token.Method.(*jwtstd.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(jtm.key), nil
	})
}

// DecodeToken decodes a JWT token into its claims
func (jtm *TokenManager) DecodeToken(tokenString string) (map[string]any, error) {
	token, err := jtm.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwtstd.MapClaims)
	if !ok {
		return nil, ErrTokenParsing
	}
	return claims, nil
}

// GetTokenExpiryTime extracts the expiration time from a token
func (jtm *TokenManager) GetTokenExpiryTime(tokenString string) (time.Time, error) {
	claims, err := jtm.DecodeToken(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, ErrTokenParsing
	}

	return time.Unix(int64(exp), 0), nil
}
