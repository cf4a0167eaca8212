package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/config"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/email"
	apperrors "github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/errors"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/jwt"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/logger"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/response"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/models"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/repository"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/usecase"
)

var log = logger.Default().With("component", "auth-handler")

// AuthHandler handles authentication requests
type AuthHandler struct {
	useCase  *usecase.AuthUseCase
	notifier *usecase.EventNotifier
}

// NewAuthHandler wires the production handler: MySQL repositories, SMTP
// email, and the async notifier.
func NewAuthHandler() *AuthHandler {
	accounts := repository.NewAccountRepository()
	notifications := repository.NewNotificationRepository()
	notifier := usecase.NewEventNotifier(notifications, email.NewEmailService(nil), 64)

	return &AuthHandler{
		useCase:  usecase.NewAuthUseCase(config.Load(), accounts, notifications, notifier),
		notifier: notifier,
	}
}

// NewAuthHandlerWith builds a handler around an existing use case.
func NewAuthHandlerWith(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: uc}
}

// Shutdown flushes the notifier queue.
func (h *AuthHandler) Shutdown() {
	if h.notifier != nil {
		h.notifier.Stop()
	}
}

// HandleSignup handles POST /api/auth/signup
func (h *AuthHandler) HandleSignup(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.SignupRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(http.StatusBadRequest, "Invalid request body")
	}

	account, err := h.useCase.Register(ctx, req)
	if err != nil {
		return errorResponseFrom(err)
	}

	return createSuccessResponse(http.StatusCreated, "Account created", map[string]interface{}{
		"id":    account.ID,
		"email": account.Email,
	})
}

// HandleLogin handles POST /api/auth/login
func (h *AuthHandler) HandleLogin(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.LoginRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(http.StatusBadRequest, "Invalid request body")
	}

	loginResponse, err := h.useCase.Login(ctx, req)
	if err != nil {
		return errorResponseFrom(err)
	}

	return createSuccessResponse(http.StatusOK, "Signed in", loginResponse)
}

// HandleForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) HandleForgotPassword(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.ForgotPasswordRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(http.StatusBadRequest, "Invalid request body")
	}

	message, err := h.useCase.ForgotPassword(ctx, req)
	if err != nil {
		return errorResponseFrom(err)
	}

	return createSuccessResponse(http.StatusOK, message, nil)
}

// HandleResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) HandleResetPassword(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.ResetPasswordRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.useCase.ResetPassword(ctx, req); err != nil {
		return errorResponseFrom(err)
	}

	return createSuccessResponse(http.StatusOK, "Password changed successfully", nil)
}

// HandleUnlockAccount handles POST /api/auth/unlock-account
func (h *AuthHandler) HandleUnlockAccount(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.UnlockAccountRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.useCase.UnlockAccount(ctx, req); err != nil {
		return errorResponseFrom(err)
	}

	// Same response whether or not the account existed
	return createSuccessResponse(http.StatusOK, "Account unlocked", nil)
}

// HandleListNotifications handles GET /api/auth/notifications
func (h *AuthHandler) HandleListNotifications(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	accessToken := extractToken(request)
	if accessToken == "" {
		return createErrorResponse(http.StatusUnauthorized, "Missing authorization token")
	}

	accountID, err := jwt.GetAccountIDFromToken(accessToken)
	if err != nil {
		return createErrorResponse(http.StatusUnauthorized, "Token is not valid")
	}

	notifications, err := h.useCase.ListNotifications(ctx, accountID)
	if err != nil {
		return errorResponseFrom(err)
	}

	return createSuccessResponse(http.StatusOK, "OK", notifications)
}

// Helper functions

func extractToken(request events.APIGatewayProxyRequest) string {
	for _, header := range []string{"Authorization", "authorization"} {
		if auth := request.Headers[header]; auth != "" {
			if len(auth) > 7 && auth[:7] == "Bearer " {
				return auth[7:]
			}
		}
	}
	return ""
}

func errorResponseFrom(err error) (events.APIGatewayProxyResponse, error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			// No internal detail in the response body
			log.Error("internal error", "code", appErr.Code, "error", appErr.Error())
			return createErrorResponse(appErr.HTTPStatus, "Internal server error")
		}
		return createErrorResponse(appErr.HTTPStatus, appErr.Message)
	}

	log.Error("unexpected error", "error", err.Error())
	return createErrorResponse(http.StatusInternalServerError, "Internal server error")
}

func createSuccessResponse(statusCode int, message string, data interface{}) (events.APIGatewayProxyResponse, error) {
	var resp response.APIResponse
	if data != nil {
		resp = response.Success(message, data)
	} else {
		resp = response.Message(message)
	}
	body, _ := json.Marshal(resp)

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

func createErrorResponse(statusCode int, message string) (events.APIGatewayProxyResponse, error) {
	resp := response.Error(message)
	body, _ := json.Marshal(resp)

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}
