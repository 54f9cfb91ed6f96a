package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

var jwtSecret = []byte("super-secret-key") // move to env in prod

// ResetTokenTTL bounds how long a reset link stays valid.
const ResetTokenTTL = 15 * time.Minute

const purposePasswordReset = "password_reset"

var ErrTokenInvalid = errors.New("invalid or expired reset token")

// SetSecret overrides the signing secret. Empty input keeps the default.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateResetToken issues a short-lived, single-purpose token for the
// user's password reset link. The jti makes each token individually
// consumable exactly once.
func GenerateResetToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"email":   user.Email,
		"purpose": purposePasswordReset,
		"jti":     newJTI(),
		"exp":     time.Now().Add(ResetTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseResetToken verifies a reset token and returns the email and jti it
// was issued for. Any structural, signature, expiry or purpose mismatch
// comes back as ErrTokenInvalid.
func ParseResetToken(tokenStr string) (email, jti string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrTokenInvalid
	}
	if purpose, _ := claims["purpose"].(string); purpose != purposePasswordReset {
		return "", "", ErrTokenInvalid
	}
	email, _ = claims["email"].(string)
	jti, _ = claims["jti"].(string)
	if email == "" || jti == "" {
		return "", "", ErrTokenInvalid
	}
	return email, jti, nil
}

func newJTI() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
