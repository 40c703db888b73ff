package jwt_test

import (
	"stayadmin/config"
	"stayadmin/infras/jwt"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "stayadmin"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret", 15)

	token, err := svc.GenerateAccessToken(jwt.Identity{UserID: "admin-1", Name: "Somchai", Email: "a@hotel.test", Role: "admin"})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "Somchai", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
}

func TestValidateToken_Failures(t *testing.T) {
	svc := newService("secret", 15)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newService("other", 15).GenerateAccessToken(jwt.Identity{UserID: "admin-1"})
		assert.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := newService("secret", -5).GenerateAccessToken(jwt.Identity{UserID: "admin-1"})
		assert.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong token type", func(t *testing.T) {
		claims := jwt.Claims{UserID: "admin-1", Type: "refresh"}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		assert.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.GenerateAccessToken(jwt.Identity{})
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "Basic abc", "Bearer ", "bearer abc"} {
		_, err := jwt.ExtractTokenFromHeader(header)
		assert.Error(t, err, header)
	}
}
