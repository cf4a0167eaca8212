package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/db"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/logger"
	"github.com/kxngzero329/Attendance-Tracker-Backend--Auth/common/scheduler"
	authHandler "github.com/kxngzero329/Attendance-Tracker-Backend--Auth/services/auth-lambda/handler"
)

var log = logger.Default().With("component", "server")

// adaptRequest converts an http.Request to an APIGatewayProxyRequest so the
// same handlers serve both the Lambda deployment and this monolith mode.
func adaptRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}
	defer r.Body.Close()

	headers := make(map[string]string)
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	queryParams := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			queryParams[key] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		QueryStringParameters: queryParams,
		Body:                  string(body),
	}, nil
}

// writeResponse writes an APIGatewayProxyResponse to the http.ResponseWriter
func writeResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write([]byte(resp.Body))
}

// corsMiddleware handles CORS preflight requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

type lambdaHandlerFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// route adapts one lambda-style handler onto net/http, tagging each request
// with an id for log correlation.
func route(method string, handlerFunc lambdaHandlerFunc) http.HandlerFunc {
	return corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, `{"success":false,"message":"Method Not Allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		requestID := uuid.NewString()
		reqLog := log.With("requestId", requestID)

		request, err := adaptRequest(r)
		if err != nil {
			reqLog.Error("failed to read request", "error", err)
			http.Error(w, `{"success":false,"message":"Bad Request"}`, http.StatusBadRequest)
			return
		}

		resp, err := handlerFunc(r.Context(), request)
		if err != nil {
			reqLog.Error("handler error", "path", r.URL.Path, "error", err)
			http.Error(w, `{"success":false,"message":"Internal server error"}`, http.StatusInternalServerError)
			return
		}

		reqLog.Info("request handled", "method", r.Method, "path", r.URL.Path, "status", resp.StatusCode)
		writeResponse(w, resp)
	})
}

func main() {
	// .env is optional; system environment wins in deployment
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment variables")
	}

	if err := db.InitDB(); err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	defer db.CloseDB()

	if err := db.RunMigrations(context.Background()); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	auth := authHandler.NewAuthHandler()
	defer auth.Shutdown()

	http.HandleFunc("/api/auth/signup", route(http.MethodPost, auth.HandleSignup))
	http.HandleFunc("/api/auth/login", route(http.MethodPost, auth.HandleLogin))
	http.HandleFunc("/api/auth/forgot-password", route(http.MethodPost, auth.HandleForgotPassword))
	http.HandleFunc("/api/auth/reset-password", route(http.MethodPost, auth.HandleResetPassword))
	http.HandleFunc("/api/auth/unlock-account", route(http.MethodPost, auth.HandleUnlockAccount))
	http.HandleFunc("/api/auth/notifications", route(http.MethodGet, auth.HandleListNotifications))

	http.HandleFunc("/health", corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))

	// Hygiene job only; every token check also compares expiry at read time
	tokenCleanup := scheduler.NewResetTokenCleanupScheduler(10)
	tokenCleanup.Start()
	defer tokenCleanup.Stop()

	port := getEnv("PORT", "8080")
	log.Info("auth backend listening", "port", port)
	log.Info("endpoints: POST /api/auth/{signup,login,forgot-password,reset-password,unlock-account}, GET /api/auth/notifications, GET /health")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
