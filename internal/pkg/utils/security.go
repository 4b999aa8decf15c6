package utils

import (
	"encoding/base64"
	"time"

	"telecheck-service/internal/app/models"
	"telecheck-service/internal/pkg/constvars"
	"telecheck-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const synthesizedTokenLifetime = 24 * time.Hour

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateSessionJWT wraps a session scope in a signed HS256 token for the
// HTTP boundary. The persisted bearer record stays an opaque handle; this
// wrapper is what actually carries enforced expiry.
func GenerateSessionJWT(sessionScope, secret string, jwtExpiryTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_scope": sessionScope,
		"exp":           time.Now().Add(time.Duration(jwtExpiryTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if scope, ok := claims["session_scope"].(string); ok {
			return scope, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(nil)
}

// SynthesizeBearerToken builds the local stand-in bearer for an identity
// whose token record is missing: base64 of the claims as JSON with expiry
// 24 hours out in epoch milliseconds. Not a signed credential.
func SynthesizeBearerToken(identity *models.Identity) (string, error) {
	claims := models.BearerClaims{
		UserID:      identity.ID,
		Email:       identity.Email,
		Role:        identity.Role,
		Permissions: identity.Permissions,
		Exp:         time.Now().Add(synthesizedTokenLifetime).UnixMilli(),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	return base64.StdEncoding.EncodeToString(payload), nil
}

func DecodeBearerToken(token string) (*models.BearerClaims, error) {
	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims := new(models.BearerClaims)
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	return claims, nil
}
