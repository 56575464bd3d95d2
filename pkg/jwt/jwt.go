package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	instance *JWT
	mu       sync.RWMutex

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
)

// JWT validates bearer tokens issued by the identity provider, which shares the HMAC secret.
type JWT struct {
	issuer    string
	secretKey string
	expiry    time.Duration
}

func Initialize(issuer, secretKey string, expiry time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	instance = &JWT{
		issuer:    issuer,
		secretKey: secretKey,
		expiry:    expiry,
	}
}

// GetInstance returns the validator configured by Initialize.
func GetInstance() (*JWT, error) {
	return getInstance()
}

func getInstance() (*JWT, error) {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return nil, ErrJWTNotInitialized
	}

	return instance, nil
}

// GenerateAccessToken signs a token the same way the identity provider does. Used by tooling and tests.
func GenerateAccessToken(userID, email, level string) (string, error) {
	j, err := getInstance()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		ID:    userID,
		Email: email,
		Level: level,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}

func ValidateToken(tokenString string) (*Claims, error) {
	j, err := getInstance()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
