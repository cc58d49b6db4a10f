package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/shared/apperr"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, username, email, password, confirm string) (string, *entity.User, error)
	LoginFunc    func(ctx context.Context, login, password string) (string, *entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, username, email, password, confirm string) (string, *entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password, confirm)
	}
	return "token", &entity.User{ID: 1, Username: username}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, login, password string) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, login, password)
	}
	return "", nil, apperr.Authentication("invalid credentials")
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success returns token and username", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, false)

		w := postJSON(t, h.Register, "/api/auth/register", gin.H{
			"username":        "alice",
			"email":           "alice@gmail.com",
			"password":        "secret1",
			"confirmPassword": "secret1",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "token", res["token"])
		assert.Equal(t, map[string]any{"username": "alice"}, res["user"])
	})

	t.Run("validation failure carries details", func(t *testing.T) {
		uc := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, username, email, password, confirm string) (string, *entity.User, error) {
				return "", nil, apperr.Validation("validation failed",
					"password must be at least 6 characters",
					"passwords do not match")
			},
		}
		h := NewAuthHandler(uc, false)

		w := postJSON(t, h.Register, "/api/auth/register", gin.H{
			"username":        "alice",
			"email":           "alice@gmail.com",
			"password":        "short",
			"confirmPassword": "other",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "validation failed", res.Error)
		assert.Len(t, res.Details, 2)
	})

	t.Run("duplicate user returns conflict", func(t *testing.T) {
		uc := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, username, email, password, confirm string) (string, *entity.User, error) {
				return "", nil, apperr.Conflict("username or email already exists")
			},
		}
		h := NewAuthHandler(uc, false)

		w := postJSON(t, h.Register, "/api/auth/register", gin.H{
			"username":        "alice",
			"email":           "alice@gmail.com",
			"password":        "secret1",
			"confirmPassword": "secret1",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body returns bad request", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, false)

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, login, password string) (string, *entity.User, error) {
				return "token", &entity.User{ID: 1, Username: "alice"}, nil
			},
		}
		h := NewAuthHandler(uc, false)

		w := postJSON(t, h.Login, "/api/auth/login", gin.H{
			"email":    "alice",
			"password": "secret1",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "token", res["token"])
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, false)

		w := postJSON(t, h.Login, "/api/auth/login", gin.H{
			"email":    "alice",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "invalid credentials", res["error"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{}, false)

		w := postJSON(t, h.Login, "/api/auth/login", gin.H{"email": "alice"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
