package auth

import (
	"testing"
	"time"

	"github.com/haca/placement/internal/app/models"
)

func testService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
}

func TestTokenPairRoundTrip(t *testing.T) {
	svc := testService()
	user := &models.User{ID: 42, Email: "jane@example.com", Role: models.RoleRecruiter}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("token generation error: %v", err)
	}
	if refreshToken == "" {
		t.Fatal("expected an opaque refresh token")
	}
	if expiresIn <= 0 || refreshExpiresIn <= 0 {
		t.Fatalf("unexpected expirations: %d, %d", expiresIn, refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "jane@example.com" || claims.Role != "RECRUITER" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	accessToken, _, _, _, err := testService().GenerateTokenPair(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("token generation error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	if _, err := other.ValidateAndExtractClaims(accessToken); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", token)
	}

	// A raw token without the prefix is passed through unchanged
	token, err = ExtractBearerToken("abc.def.ghi")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token: %q", token)
	}

	if _, err := ExtractBearerToken(""); err == nil {
		t.Fatal("expected an error for an empty header")
	}
}
