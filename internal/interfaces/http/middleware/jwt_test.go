package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/infrastructure/auth"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	})
}

func newTestToken(t *testing.T, svc *auth.JWTService, userID int64, role string) *auth.TokenPair {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:    userID,
		Username:  "rider",
		Role:      role,
		FirstName: "Ride",
	})
	require.NoError(t, err)
	return pair
}

func protectedRouter(cfg JWTMiddlewareConfig, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(JWTAuthMiddleware(cfg))
	router.Use(extra...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c), "admin": IsAdmin(c)})
	})
	return router
}

func doGet(router http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if token != "" {
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	svc := newTestJWTService()
	pair := newTestToken(t, svc, 42, "customer")

	rec := doGet(protectedRouter(JWTMiddlewareConfig{JWTService: svc}), pair.AccessToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gjson.Get(rec.Body.String(), "user_id").Int())
	assert.False(t, gjson.Get(rec.Body.String(), "admin").Bool())
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	svc := newTestJWTService()
	pair := newTestToken(t, svc, 42, "customer")

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{"missing header", "", "ERR_UNAUTHORIZED"},
		{"garbage token", "not-a-jwt", "ERR_TOKEN_INVALID"},
		{"refresh token used as access token", pair.RefreshToken, "ERR_TOKEN_INVALID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(protectedRouter(JWTMiddlewareConfig{JWTService: svc}), tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := rec.Body.String()
			assert.False(t, gjson.Get(body, "success").Bool())
			assert.Equal(t, tt.code, gjson.Get(body, "error.code").String())
			assert.NotEmpty(t, gjson.Get(body, "error.request_id").String())
		})
	}
}

func TestJWTAuthMiddleware_BlacklistedToken(t *testing.T) {
	svc := newTestJWTService()
	pair := newTestToken(t, svc, 7, "customer")
	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	blacklist := auth.NewInMemoryTokenBlacklist()
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

	rec := doGet(protectedRouter(JWTMiddlewareConfig{JWTService: svc, TokenBlacklist: blacklist}), pair.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "ERR_TOKEN_REVOKED", gjson.Get(rec.Body.String(), "error.code").String())
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestJWTService()
	router := protectedRouter(JWTMiddlewareConfig{JWTService: svc}, RequireAdmin())

	t.Run("customer is forbidden", func(t *testing.T) {
		rec := doGet(router, newTestToken(t, svc, 3, "customer").AccessToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ERR_FORBIDDEN", gjson.Get(rec.Body.String(), "error.code").String())
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := doGet(router, newTestToken(t, svc, 1, auth.RoleAdmin).AccessToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gjson.Get(rec.Body.String(), "admin").Bool())
	})
}

func TestOptionalJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService()
	router := gin.New()
	router.Use(OptionalJWTAuthMiddleware(svc))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})

	rec := doGet(router, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), gjson.Get(rec.Body.String(), "user_id").Int())

	rec = doGet(router, "broken")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(router, newTestToken(t, svc, 9, "customer").AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), gjson.Get(rec.Body.String(), "user_id").Int())
}
