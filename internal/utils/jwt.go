package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const tokenExpiration = 24 * time.Hour

type JWTManager struct {
	TokenName string
	secret    string
	logger    *zap.Logger
}

type claims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
}

func InitJWTManager(tokenName string, secret string, logger *zap.Logger) *JWTManager {
	return &JWTManager{
		TokenName: tokenName,
		secret:    secret,
		logger:    logger,
	}
}

func (j *JWTManager) BuildJWTString(login string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiration)),
		},
		Login: login,
	})

	tokenString, err := token.SignedString([]byte(j.secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (j *JWTManager) GetUserLogin(tokenString string) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secret), nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		j.logger.Warn("token is not valid")
		return "", fmt.Errorf("token is not valid")
	}

	return c.Login, nil
}
