package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
)

type Service interface {
	GenerateAccessToken(username string, fullName string, role staff.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(username string) (token string, expiresAt int64, err error)
	ValidateRefreshToken(tokenString string) (username string, jti string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(jti string)
	IsTokenRevoked(jti string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedJTIs                map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedJTIs:                make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(username string, fullName string, role staff.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"username":  username,
		"full_name": fullName,
		"role":      string(role),
		"type":      "access",
		"exp":       expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(username string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"username": username,
		"jti":      uuid.NewString(),
		"exp":      expiresAt,
		"type":     "refresh",
	})
	return tokenString, expiresAt, err
}

// ValidateRefreshToken decodes a refresh token and returns its subject and
// JTI. Revocation is checked by the caller against IsTokenRevoked.
func (j *JWTService) ValidateRefreshToken(tokenString string) (username string, jti string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", "", jwt.ErrInvalidJWT()
	}

	usernameVal, ok := token.Get("username")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	username, ok = usernameVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	jtiVal, ok := token.Get("jti")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	jti, ok = jtiVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	return username, jti, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(jti string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedJTIs[jti] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedJTIs[jti]
	return revoked
}
