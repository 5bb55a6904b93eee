package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// UserHandler handles signup and login.
type UserHandler struct {
	svc    service.UserService
	redact bool
	log    *zap.Logger
}

// NewUserHandler creates a user handler. With redact set the password hash
// is stripped from responses.
func NewUserHandler(svc service.UserService, redact bool, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, redact: redact, log: log}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse is returned after a successful signup.
type SignupResponse struct {
	Message string     `json:"message"`
	NewUser model.User `json:"newUser"`
}

// LoginResponse carries the bearer token for the authenticated user.
type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} SignupResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody.Echo()
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.MapErrorToHTTP(apperrors.ErrMissingFields, "").Echo()
	}

	user, err := h.svc.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return respond(c, h.log, err, "Failed to add user")
	}

	return c.JSON(http.StatusCreated, SignupResponse{
		Message: "User created successfully",
		NewUser: h.present(user),
	})
}

// Login godoc
// @Summary Login user
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody.Echo()
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.MapErrorToHTTP(apperrors.ErrMissingFields, "").Echo()
	}

	token, user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respond(c, h.log, err, "Failed to login user")
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    h.present(user),
	})
}

func (h *UserHandler) present(user *model.User) model.User {
	if h.redact {
		return user.Redacted()
	}
	return *user
}
