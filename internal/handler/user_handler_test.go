package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

func TestUserHandler_Signup(t *testing.T) {
	created := &model.User{ID: "u1", Username: "ada", Email: "ada@example.com", Password: "$2a$10$hash"}

	tests := []struct {
		name       string
		body       string
		redact     bool
		setupMock  func(*MockUserService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"username":"ada","email":"ada@example.com","password":"pw"}`,
			setupMock: func(m *MockUserService) {
				m.On("Signup", mock.Anything, "ada", "ada@example.com", "pw").Return(created, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"User created successfully","newUser":{"_id":"u1","username":"ada","email":"ada@example.com","password":"$2a$10$hash","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:   "created with redacted hash",
			body:   `{"username":"ada","email":"ada@example.com","password":"pw"}`,
			redact: true,
			setupMock: func(m *MockUserService) {
				m.On("Signup", mock.Anything, "ada", "ada@example.com", "pw").Return(created, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"User created successfully","newUser":{"_id":"u1","username":"ada","email":"ada@example.com","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name: "duplicate email",
			body: `{"username":"ada","email":"ada@example.com","password":"pw"}`,
			setupMock: func(m *MockUserService) {
				m.On("Signup", mock.Anything, "ada", "ada@example.com", "pw").Return(nil, apperrors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"User already exists"}`,
		},
		{
			name:       "missing password",
			body:       `{"username":"ada","email":"ada@example.com"}`,
			setupMock:  func(m *MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name: "overlong password",
			body: `{"username":"ada","email":"ada@example.com","password":"pw"}`,
			setupMock: func(m *MockUserService) {
				m.On("Signup", mock.Anything, "ada", "ada@example.com", "pw").
					Return(nil, apperrors.NewValidationError("User", "password", "must be at most 72 bytes"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"User validation failed: password: must be at most 72 bytes"}`,
		},
		{
			name: "store failure is hidden",
			body: `{"username":"ada","email":"ada@example.com","password":"pw"}`,
			setupMock: func(m *MockUserService) {
				m.On("Signup", mock.Anything, "ada", "ada@example.com", "pw").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to add user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)

			e := newTestEcho()
			h := NewUserHandler(svc, tt.redact, testLogger)
			e.POST("/user/signup", h.Signup)

			rec := serve(e, http.MethodPost, "/user/signup", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	user := &model.User{ID: "u1", Username: "ada", Email: "ada@example.com", Password: "$2a$10$hash"}

	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "ada@example.com", "pw").Return("signed.jwt.token", user, nil)

		e := newTestEcho()
		e.POST("/user/login", NewUserHandler(svc, false, testLogger).Login)

		rec := serve(e, http.MethodPost, "/user/login", `{"email":"ada@example.com","password":"pw"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "signed.jwt.token", body.Token)
		assert.Equal(t, "u1", body.User.ID)
	})

	// Unknown email and wrong password must be indistinguishable.
	for _, cause := range []error{apperrors.ErrUserNotFound, apperrors.ErrInvalidCredentials} {
		t.Run(cause.Error(), func(t *testing.T) {
			svc := new(MockUserService)
			svc.On("Login", mock.Anything, "ada@example.com", "pw").Return("", nil, cause)

			e := newTestEcho()
			e.POST("/user/login", NewUserHandler(svc, false, testLogger).Login)

			rec := serve(e, http.MethodPost, "/user/login", `{"email":"ada@example.com","password":"pw"}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockUserService)

		e := newTestEcho()
		e.POST("/user/login", NewUserHandler(svc, false, testLogger).Login)

		rec := serve(e, http.MethodPost, "/user/login", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}
