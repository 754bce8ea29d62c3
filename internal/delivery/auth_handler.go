package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.UserUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc usecase.UserUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

type CredentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" form:"username"`
	OldPassword string `json:"oldPassword" form:"oldPassword"`
	NewPassword string `json:"newPassword" form:"newPassword"`
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/reset-password", h.ResetPassword)
}

// Signup reports every failure, a taken username included, as 500.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := bindRequest(c, &req); err != nil {
		h.log.Warnf("Failed to bind signup request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if _, err := h.useCase.Signup(c.Request.Context(), req.Username, req.Password); err != nil {
		h.log.Errorf("Signup failed for '%s': %v", req.Username, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	SuccessResponse(c, http.StatusOK, "User created successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")
	var req CredentialsRequest
	if err := bindRequest(c, &req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	_, err := h.useCase.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		SuccessResponse(c, http.StatusOK, "Login successful!")
	case errors.Is(err, domain.ErrUserNotRegistered):
		ErrorResponse(c, http.StatusUnauthorized, msgNotRegistered)
	case errors.Is(err, domain.ErrIncorrectPassword):
		ErrorResponse(c, http.StatusUnauthorized, msgBadPassword)
	default:
		handlerLogger.Errorf("Login failed for '%s': %v", req.Username, err)
		ErrorResponse(c, http.StatusInternalServerError, msgInternalError)
	}
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ResetPassword")
	var req ResetPasswordRequest
	if err := bindRequest(c, &req); err != nil {
		handlerLogger.Warnf("Failed to bind reset password request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.useCase.ResetPassword(c.Request.Context(), req.Username, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		SuccessResponse(c, http.StatusOK, "Password reset successfully!")
	case errors.Is(err, domain.ErrUserNotRegistered):
		ErrorResponse(c, http.StatusUnauthorized, msgNotRegistered)
	case errors.Is(err, domain.ErrIncorrectPassword):
		ErrorResponse(c, http.StatusUnauthorized, msgBadOldPassword)
	default:
		handlerLogger.Errorf("Password reset failed for '%s': %v", req.Username, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to reset password")
	}
}
