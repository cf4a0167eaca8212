package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/handler"
)

var authHandler *handler.AuthHandler

func init() {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize handler
	authHandler = handler.NewAuthHandler()
}

// Handler is the Lambda function handler
func Handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Route based on path and method
	path := request.Path
	method := request.HTTPMethod

	switch {
	case path == "/api/auth/signup" && method == "POST":
		return authHandler.HandleSignup(ctx, request)

	case path == "/api/auth/login" && method == "POST":
		return authHandler.HandleLogin(ctx, request)

	case path == "/api/auth/forgot-password" && method == "POST":
		return authHandler.HandleForgotPassword(ctx, request)

	case path == "/api/auth/reset-password" && method == "POST":
		return authHandler.HandleResetPassword(ctx, request)

	case path == "/api/auth/unlock-account" && method == "POST":
		return authHandler.HandleUnlockAccount(ctx, request)

	case path == "/api/auth/notifications" && method == "GET":
		return authHandler.HandleListNotifications(ctx, request)

	default:
		return events.APIGatewayProxyResponse{
			StatusCode: 404,
			Body:       `{"success":false,"message":"Not Found"}`,
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		}, nil
	}
}

func main() {
	lambda.Start(Handler)
}
