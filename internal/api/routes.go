package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/hakuramasam/arcade-gmmc/internal/handler"
	"github.com/hakuramasam/arcade-gmmc/internal/middleware"
	"github.com/hakuramasam/arcade-gmmc/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RecoverMiddleware)
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Scores
	r.HandleFunc("/scores", handler.SubmitScore).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/top", handler.GetTopPerformers).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/wallets/{address}", handler.GetWalletRank).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/wallets/{address}/scores", handler.GetWalletScores).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
