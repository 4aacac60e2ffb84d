package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"mindtrack/internal/config"
	"mindtrack/internal/service"
	"mindtrack/internal/transport/rest/handler"
	"mindtrack/internal/transport/rest/middleware"
	"mindtrack/internal/transport/ws"
)

// Container bundles everything the router needs.
type Container struct {
	Config         *config.Config
	Auth           *service.AuthService
	Users          *service.UserService
	Questionnaires *service.QuestionnaireService
	Predictions    *service.PredictionService
	Stats          *service.StatsService
	Socket         *ws.Handler
}

// NewRouter wires all routes and middleware.
func NewRouter(c *Container) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(corsMiddleware(c.Config))

	authHandler := handler.NewAuthHandler(c.Auth)
	userHandler := handler.NewUserHandler(c.Users)
	questionnaireHandler := handler.NewQuestionnaireHandler(c.Questionnaires)
	predictionHandler := handler.NewPredictionHandler(c.Predictions)
	statisticsHandler := handler.NewStatisticsHandler(c.Stats)

	api := r.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/statistics/overview", statisticsHandler.Overview).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/statistics/demographics", statisticsHandler.Demographics).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/statistics/mental-health", statisticsHandler.MentalHealth).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/statistics/risk-factors", statisticsHandler.RiskFactors).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/statistics/categories", statisticsHandler.Categories).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/ws", c.Socket).Methods(http.MethodGet)

	// Authenticated
	requireUser := middleware.RequireUser(c.Auth)

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(requireUser)
	auth.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet, http.MethodOptions)
	auth.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost, http.MethodOptions)

	users := api.PathPrefix("/users").Subrouter()
	users.Use(requireUser)
	users.HandleFunc("/profile", userHandler.Profile).Methods(http.MethodGet, http.MethodOptions)
	users.HandleFunc("/profile", userHandler.UpdateProfile).Methods(http.MethodPut, http.MethodOptions)
	users.HandleFunc("/progress", userHandler.Progress).Methods(http.MethodGet, http.MethodOptions)
	users.HandleFunc("/progress", userHandler.LogProgress).Methods(http.MethodPost, http.MethodOptions)

	questionnaire := api.PathPrefix("/questionnaire").Subrouter()
	questionnaire.Use(requireUser)
	questionnaire.HandleFunc("/submit", questionnaireHandler.Submit).Methods(http.MethodPost, http.MethodOptions)
	questionnaire.HandleFunc("/history", questionnaireHandler.History).Methods(http.MethodGet, http.MethodOptions)

	predictions := api.PathPrefix("/predictions").Subrouter()
	predictions.Use(requireUser)
	predictions.HandleFunc("/history", predictionHandler.History).Methods(http.MethodGet, http.MethodOptions)
	predictions.HandleFunc("/latest", predictionHandler.Latest).Methods(http.MethodGet, http.MethodOptions)
	predictions.HandleFunc("/trends", predictionHandler.Trends).Methods(http.MethodGet, http.MethodOptions)
	predictions.HandleFunc("/insights", predictionHandler.Insights).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	r.HandleFunc("/", welcome).Methods(http.MethodGet)

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy"}`))
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"Welcome to the MindTrack API"}`))
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
