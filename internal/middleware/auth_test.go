package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"college-appointment-server/internal/config"
	"college-appointment-server/internal/models"
	"college-appointment-server/internal/utils"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:                 "access-secret",
		JWTRefreshSecret:          "refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 168,
	}
}

func issueToken(t *testing.T, cfg *config.Config, userID string, role models.Role) string {
	t.Helper()
	user := &models.User{BaseModel: models.BaseModel{ID: userID}, Role: role}
	accessToken, _, err := utils.GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	return accessToken
}

func protectedRouter(cfg *config.Config, roles ...models.Role) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		chain = append(chain, RoleAuthMiddleware(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	r.GET("/protected", chain...)
	return r
}

func getProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := authTestConfig()
	accessToken := issueToken(t, cfg, "user-1", models.RoleStudent)
	r := protectedRouter(cfg)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + accessToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := getProtected(r, tt.header); w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	cfg := authTestConfig()
	accessToken := issueToken(t, cfg, "user-42", models.RoleProfessor)
	r := protectedRouter(cfg)

	w := getProtected(r, "Bearer "+accessToken)
	if w.Body.String() != "user-42" {
		t.Errorf("expected the handler to see user-42, got %q", w.Body.String())
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	cfg := authTestConfig()
	professorToken := issueToken(t, cfg, "prof-1", models.RoleProfessor)
	studentToken := issueToken(t, cfg, "student-1", models.RoleStudent)
	r := protectedRouter(cfg, models.RoleProfessor)

	if w := getProtected(r, "Bearer "+professorToken); w.Code != http.StatusOK {
		t.Errorf("professor should pass, got %d", w.Code)
	}
	if w := getProtected(r, "Bearer "+studentToken); w.Code != http.StatusForbidden {
		t.Errorf("student should be rejected, got %d", w.Code)
	}
}
