package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	database "github.com/sebuszqo/FinanceTracker/internal/db"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	authService        auth.Service
	transactionHandler *interfaces.TransactionHandler
	categoryHandler    *interfaces.CategoryHandler
	dashboardHandler   *interfaces.DashboardHandler
	dbHealth           func() map[string]string
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	transactionHandler *interfaces.TransactionHandler,
	categoryHandler *interfaces.CategoryHandler,
	dashboardHandler *interfaces.DashboardHandler,
	dbHealth func() map[string]string,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authHandler:        authHandler,
		authService:        authService,
		transactionHandler: transactionHandler,
		categoryHandler:    categoryHandler,
		dashboardHandler:   dashboardHandler,
		dbHealth:           dbHealth,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		logger.Warn().Msg("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"message":   "Finance Tracker API is running",
		"database":  s.dbHealth(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.authHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("GET /api/health", http.HandlerFunc(s.handleHealth))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.GetCategories)))

	protectedRoutes.Handle("POST /api/protected/categories",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.CreateCategory)))

	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.UpdateCategory)))

	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	protectedRoutes.Handle("GET /api/protected/categories/{categoryID}/usage",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.categoryHandler.GetCategoryUsage)))

	// TRANSACTIONS API
	protectedRoutes.Handle("GET /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))

	protectedRoutes.Handle("POST /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.CreateTransaction)))

	protectedRoutes.Handle("PUT /api/protected/transactions/{transactionID}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))

	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// DASHBOARD API
	protectedRoutes.Handle("GET /api/protected/dashboard/stats",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.dashboardHandler.GetDashboardStats)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		logger.Fatal().Err(err).Msg("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not initialize database")
	}
	defer dbService.Close()

	jwtManager := auth.NewJWTManager()
	authRepo := auth.NewUserRepository(dbService.DB)
	authService := auth.NewAuthService(authRepo, jwtManager)
	authHandler := auth.NewHandler(authService, respondJSON, respondError)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo, transactionRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	dashboardService := application.NewDashboardService(transactionRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	dashboardHandler := interfaces.NewDashboardHandler(dashboardService, respondJSON, respondError)

	server := NewServer(authHandler, authService, transactionHandler, categoryHandler, dashboardHandler, dbService.Health)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
