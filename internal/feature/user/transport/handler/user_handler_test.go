package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/feature/user/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	GetProfileFunc func(ctx context.Context, userID uint) (*usecase.Profile, error)
}

func (m *mockUserUsecase) GetProfile(ctx context.Context, userID uint) (*usecase.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, errors.New("user not found")
}

func newTestRouter(uc UserUsecase, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(uc)

	r := gin.New()
	r.GET("/api/user/data", func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}, h.GetUserData)
	return r
}

func TestUserHandler_GetUserData(t *testing.T) {
	t.Run("returns name and verification status", func(t *testing.T) {
		uc := &mockUserUsecase{
			GetProfileFunc: func(ctx context.Context, userID uint) (*usecase.Profile, error) {
				assert.Equal(t, uint(7), userID)
				return &usecase.Profile{Name: "Ana", IsAccountVerified: true}, nil
			},
		}
		router := newTestRouter(uc, 7)

		req, _ := http.NewRequest(http.MethodGet, "/api/user/data", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])

		userData, ok := body["userData"].(map[string]any)
		require.True(t, ok, "userData missing")
		assert.Equal(t, "Ana", userData["name"])
		assert.Equal(t, true, userData["isAccountVerified"])

		// Credential and OTP state must never be exposed.
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "Otp")
	})

	t.Run("unknown user", func(t *testing.T) {
		router := newTestRouter(&mockUserUsecase{}, 7)

		req, _ := http.NewRequest(http.MethodGet, "/api/user/data", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "User not found", body["message"])
	})
}
