package utils

import (
	"testing"

	"college-appointment-server/internal/config"
	"college-appointment-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "access-secret",
		JWTRefreshSecret:          "refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "user@college.edu",
		Role:      models.RoleProfessor,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()

	accessToken, refreshToken, err := GenerateTokens(testUser(), cfg)
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if accessToken == refreshToken {
		t.Error("access and refresh tokens must differ")
	}

	claims, err := ValidateToken(accessToken, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != models.RoleProfessor {
		t.Errorf("unexpected claims: %+v", claims)
	}

	refreshClaims, err := ValidateToken(refreshToken, cfg.JWTRefreshSecret)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	if refreshClaims.UserID != "user-1" {
		t.Errorf("unexpected refresh claims: %+v", refreshClaims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	accessToken, refreshToken, err := GenerateTokens(testUser(), cfg)
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	// The two token families are signed with different secrets and must
	// not be interchangeable.
	if _, err := ValidateToken(accessToken, cfg.JWTRefreshSecret); err == nil {
		t.Error("access token validated with the refresh secret")
	}
	if _, err := ValidateToken(refreshToken, cfg.JWTSecret); err == nil {
		t.Error("refresh token validated with the access secret")
	}
	if _, err := ValidateToken(accessToken, "something-else"); err == nil {
		t.Error("token validated with an arbitrary secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpirationMinutes = -1

	accessToken, _, err := GenerateTokens(testUser(), cfg)
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	if _, err := ValidateToken(accessToken, cfg.JWTSecret); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", "secret"); err == nil {
		t.Error("expected garbage to be rejected")
	}
}
