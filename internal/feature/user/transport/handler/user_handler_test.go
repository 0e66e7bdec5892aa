package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/domain"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserService is a mock implementation of the UserService interface.
type mockUserService struct {
	CreateUserFunc func(ctx context.Context, in usecase.CreateUserInput) error
	LoginUserFunc  func(ctx context.Context, in usecase.LoginInput) (usecase.LoginResult, error)
	GetUserFunc    func(ctx context.Context, token string) (usecase.UserData, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, in usecase.CreateUserInput) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, in)
	}
	return nil
}

func (m *mockUserService) LoginUser(ctx context.Context, in usecase.LoginInput) (usecase.LoginResult, error) {
	if m.LoginUserFunc != nil {
		return m.LoginUserFunc(ctx, in)
	}
	return usecase.LoginResult{}, errors.New("login failed")
}

func (m *mockUserService) GetUser(ctx context.Context, token string) (usecase.UserData, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, token)
	}
	return usecase.UserData{}, domain.ErrUserToken
}

func newTestRouter(svc UserService) *gin.Engine {
	r := gin.New()
	NewUserHandler(svc).Register(r.Group("/users"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) gin.H {
	t.Helper()

	var out gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var validCreateBody = gin.H{
	"email":    "pimpim@example.com",
	"fullName": "Pim Pim",
	"password": "password123",
	"username": "pimpim",
}

func withField(field string, value any) gin.H {
	out := gin.H{}
	for k, v := range validCreateBody {
		out[k] = v
	}
	out[field] = value
	return out
}

func TestUserHandler_CreateUser_MissingFields(t *testing.T) {
	for _, field := range []string{"email", "fullName", "password", "username"} {
		t.Run("missing "+field, func(t *testing.T) {
			called := false
			svc := &mockUserService{
				CreateUserFunc: func(ctx context.Context, in usecase.CreateUserInput) error {
					called = true
					return nil
				},
			}

			w := doJSON(t, newTestRouter(svc), http.MethodPost, "/users", withField(field, ""))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, gin.H{"msg": fmt.Sprintf("missing %s value", field)}, decodeBody(t, w))
			assert.False(t, called, "service must not be called")
		})
	}
}

func TestUserHandler_CreateUser_BlankFields(t *testing.T) {
	for _, field := range []string{"email", "fullName", "username"} {
		t.Run("blank "+field, func(t *testing.T) {
			called := false
			svc := &mockUserService{
				CreateUserFunc: func(ctx context.Context, in usecase.CreateUserInput) error {
					called = true
					return nil
				},
			}

			w := doJSON(t, newTestRouter(svc), http.MethodPost, "/users", withField(field, "   "))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, gin.H{"msg": fmt.Sprintf("missing %s value", field)}, decodeBody(t, w))
			assert.False(t, called, "service must not be called")
		})
	}

	t.Run("whitespace password is passed through", func(t *testing.T) {
		var got usecase.CreateUserInput
		svc := &mockUserService{
			CreateUserFunc: func(ctx context.Context, in usecase.CreateUserInput) error {
				got = in
				return nil
			},
		}

		w := doJSON(t, newTestRouter(svc), http.MethodPost, "/users", withField("password", "   "))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "   ", got.Password)
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		serviceErr     error
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user created",
			body:           validCreateBody,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: empty body reports first field",
			body:           nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "missing email value"},
		},
		{
			name:           "failure: several missing reports first in order",
			body:           gin.H{"email": "a@b.c", "username": "u"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "missing fullName value"},
		},
		{
			name:           "failure: wrong field type",
			body:           withField("email", 42),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "invalid request body"},
		},
		{
			name:           "failure: duplicate user",
			body:           validCreateBody,
			serviceErr:     domain.ErrUserDuplicate,
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"msg": "duplicated user"},
		},
		{
			name:           "failure: wrapped duplicate user",
			body:           validCreateBody,
			serviceErr:     fmt.Errorf("create: %w", domain.ErrUserDuplicate),
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"msg": "duplicated user"},
		},
		{
			name:           "failure: invalid user",
			body:           validCreateBody,
			serviceErr:     domain.ErrInvalidUser,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "invalid user"},
		},
		{
			name:           "failure: unexpected error",
			body:           validCreateBody,
			serviceErr:     errors.New("database down"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "failure: other domain error is unexpected here",
			body:           validCreateBody,
			serviceErr:     domain.ErrUserToken,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got usecase.CreateUserInput
			svc := &mockUserService{
				CreateUserFunc: func(ctx context.Context, in usecase.CreateUserInput) error {
					got = in
					return tt.serviceErr
				},
			}

			w := doJSON(t, newTestRouter(svc), http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody == nil {
				assert.Empty(t, w.Body.String())
			} else {
				assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			}
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, usecase.CreateUserInput{
					Email:    "pimpim@example.com",
					FullName: "Pim Pim",
					Password: "password123",
					Username: "pimpim",
				}, got)
			}
		})
	}
}

func TestUserHandler_LoginUser(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		result         usecase.LoginResult
		serviceErr     error
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: token passed through",
			body:           gin.H{"login": "pimpim", "password": "password123"},
			result:         usecase.LoginResult{AccessToken: "dummy-jwt-token"},
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"accessToken": "dummy-jwt-token"},
		},
		{
			name:           "failure: missing login",
			body:           gin.H{"password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "missing login value"},
		},
		{
			name:           "failure: missing login and password reports login",
			body:           gin.H{"login": "", "password": ""},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "missing login value"},
		},
		{
			name:           "failure: blank login",
			body:           gin.H{"login": "     ", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "missing login value"},
		},
		{
			name:           "failure: missing password",
			body:           gin.H{"login": "pimpim"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "missing password value"},
		},
		{
			name:           "failure: user not found",
			body:           gin.H{"login": "nobody", "password": "password123"},
			serviceErr:     domain.ErrUserNotFound,
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"msg": "user not found"},
		},
		{
			name:           "failure: wrong password",
			body:           gin.H{"login": "pimpim", "password": "nope"},
			serviceErr:     domain.ErrWrongPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"msg": "unauthorized user"},
		},
		{
			name:           "failure: unexpected error",
			body:           gin.H{"login": "pimpim", "password": "password123"},
			serviceErr:     errors.New("failed to sign token"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{
				LoginUserFunc: func(ctx context.Context, in usecase.LoginInput) (usecase.LoginResult, error) {
					return tt.result, tt.serviceErr
				},
			}

			w := doJSON(t, newTestRouter(svc), http.MethodPost, "/users/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody == nil {
				assert.Empty(t, w.Body.String())
			} else {
				assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			}
		})
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	acceptABC := func(ctx context.Context, token string) (usecase.UserData, error) {
		if token != "abc123" {
			return usecase.UserData{}, domain.ErrUserToken
		}
		return usecase.UserData{ID: 1, Email: "pimpim@example.com", FullName: "Pim Pim", Username: "pimpim"}, nil
	}

	tests := []struct {
		name           string
		header         []string
		getUser        func(ctx context.Context, token string) (usecase.UserData, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: valid bearer token",
			header:         []string{"Bearer abc123"},
			getUser:        acceptABC,
			expectedStatus: http.StatusOK,
			expectedBody: gin.H{
				"id":       float64(1),
				"email":    "pimpim@example.com",
				"fullName": "Pim Pim",
				"username": "pimpim",
			},
		},
		{
			name:           "failure: header omitted",
			getUser:        acceptABC,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "Header without authorization token."},
		},
		{
			name:           "failure: no scheme",
			header:         []string{"abc123"},
			getUser:        acceptABC,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "Authorization not in required format."},
		},
		{
			name:           "failure: empty header value",
			header:         []string{""},
			getUser:        acceptABC,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "Authorization not in required format."},
		},
		{
			name:           "failure: lowercase scheme",
			header:         []string{"bearer abc123"},
			getUser:        acceptABC,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "Authorization not in required format."},
		},
		{
			name:           "failure: token with space",
			header:         []string{"Bearer abc 123"},
			getUser:        acceptABC,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"msg": "Authorization not in required format."},
		},
		{
			name:           "failure: invalid token",
			header:         []string{"Bearer other"},
			getUser:        acceptABC,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"msg": "Invalid token."},
		},
		{
			name:   "failure: unexpected error",
			header: []string{"Bearer abc123"},
			getUser: func(ctx context.Context, token string) (usecase.UserData, error) {
				return usecase.UserData{}, errors.New("database down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"msg": "Internal Server Error."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{GetUserFunc: tt.getUser}

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			for _, v := range tt.header {
				req.Header.Add("Authorization", v)
			}
			w := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
		})
	}
}

func TestUserHandler_MalformedJSON(t *testing.T) {
	for _, path := range []string{"/users", "/users/login"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"login":`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newTestRouter(&mockUserService{}).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, gin.H{"msg": "invalid request body"}, decodeBody(t, w))
		})
	}
}
