package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/database"
	"github.com/mettlehq/ats-api/internal/dto"
	"github.com/mettlehq/ats-api/internal/middleware"
	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/repository"
	"github.com/mettlehq/ats-api/internal/services"
)

const testJWTSecret = "test-secret"

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	userRepo    repository.UserRepository
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, testJWTSecret, time.Hour)
	handler := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.GET("/api/auth/me", middleware.RequireAuth(authService, testJWTSecret), handler.GetCurrentUser)
	r.POST("/api/auth/forgot-password", handler.ForgotPassword)
	r.POST("/api/auth/reset-password", handler.ResetPassword)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
		userRepo:    userRepo,
	}
}

func (env authTestEnv) register(t *testing.T, email, password, fullName string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env authTestEnv) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.register(t, "ann@example.com", "pw123", "Ann")
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "ann@example.com", response.Email)
	require.Equal(t, "Ann", response.FullName)
	require.Equal(t, models.RoleRecruiter, response.Role)
	require.True(t, response.IsActive)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.register(t, "ann@example.com", "pw123", "Ann")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.register(t, "ann@example.com", "other", "Ann Again")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, "ann@example.com", "pw123", "Ann").Code)

	w := env.login(t, "ann@example.com", "pw123")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)
	require.Equal(t, "bearer", response.TokenType)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, "ann@example.com", "pw123", "Ann").Code)

	w := env.login(t, "ann@example.com", "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown email produces the same status and body shape
	w2 := env.login(t, "nobody@example.com", "pw123")
	require.Equal(t, http.StatusUnauthorized, w2.Code)
	require.JSONEq(t, w.Body.String(), w2.Body.String())
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, "ann@example.com", "pw123", "Ann").Code)

	loginW := env.login(t, "ann@example.com", "pw123")
	require.Equal(t, http.StatusOK, loginW.Code)

	var tokenResponse dto.TokenResponse
	require.NoError(t, json.Unmarshal(loginW.Body.Bytes(), &tokenResponse))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenResponse.AccessToken)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "ann@example.com", response.Email)
}

func TestAuthHandler_GetCurrentUser_NoToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	body, err := json.Marshal(map[string]string{"email": "nobody@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, genericResetMessage, response.Message)
}

func TestAuthHandler_ForgotPassword_StoresToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, "ann@example.com", "pw123", "Ann").Code)

	body, err := json.Marshal(map[string]string{"email": "ann@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	user, err := env.userRepo.FindByEmail("ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.ResetToken)
	require.NotEmpty(t, *user.ResetToken)
	require.NotNil(t, user.ResetTokenExpiresAt)
	require.WithinDuration(t, time.Now().Add(services.ResetTokenTTL), *user.ResetTokenExpiresAt, time.Minute)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, "ann@example.com", "pw123", "Ann").Code)
	require.NoError(t, env.authService.RequestPasswordReset("ann@example.com"))

	user, err := env.userRepo.FindByEmail("ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.ResetToken)

	body, err := json.Marshal(map[string]string{
		"token":        *user.ResetToken,
		"new_password": "newpass",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Token is single-use: it is cleared after a successful reset
	user, err = env.userRepo.FindByEmail("ann@example.com")
	require.NoError(t, err)
	require.Nil(t, user.ResetToken)
	require.Nil(t, user.ResetTokenExpiresAt)

	// Old password no longer works, new one does
	require.Equal(t, http.StatusUnauthorized, env.login(t, "ann@example.com", "pw123").Code)
	require.Equal(t, http.StatusOK, env.login(t, "ann@example.com", "newpass").Code)
}

func TestAuthHandler_ResetPassword_UnknownToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	body, err := json.Marshal(map[string]string{
		"token":        "not-a-real-token",
		"new_password": "newpass",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_ResetPassword_ExpiredToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	require.Equal(t, http.StatusCreated, env.register(t, "ann@example.com", "pw123", "Ann").Code)

	token := "expired-token"
	expiredAt := time.Now().Add(-time.Minute)
	user, err := env.userRepo.FindByEmail("ann@example.com")
	require.NoError(t, err)
	user.ResetToken = &token
	user.ResetTokenExpiresAt = &expiredAt
	require.NoError(t, env.userRepo.Update(user))

	body, err := json.Marshal(map[string]string{
		"token":        token,
		"new_password": "newpass",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
