package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/netutil"

	"mente-assistant-backend/internal/analytics"
	"mente-assistant-backend/internal/assistant"
	"mente-assistant-backend/internal/auth"
	"mente-assistant-backend/internal/config"
	"mente-assistant-backend/internal/db"
	"mente-assistant-backend/internal/engine"
	"mente-assistant-backend/internal/moods"
	"mente-assistant-backend/internal/session"
	"mente-assistant-backend/internal/tasks"
)

// ----------------------
//        MAIN
// ----------------------

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	log.Println("✅ Connected to PostgreSQL!")

	secret := []byte(cfg.JWTSecret)
	mw := auth.New(secret)

	eng := engine.New()
	sessions := session.NewStore(30 * time.Minute)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH API -----
	mux.HandleFunc("/auth/register", auth.RegisterHandler(database, secret))
	mux.HandleFunc("/auth/login", auth.LoginHandler(database, secret))
	mux.HandleFunc("/auth/me", mw.Wrap(auth.MeHandler(database)))
	mux.HandleFunc("/auth/logout", mw.Wrap(auth.LogoutHandler()))
	mux.HandleFunc("/auth/account", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			auth.DeleteAccountHandler(database)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// ----- TASKS API -----
	mux.HandleFunc("/api/tasks", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			tasks.GetTasksHandler(database)(w, r)
		case http.MethodPost:
			tasks.CreateTaskHandler(database)(w, r)
		case http.MethodDelete:
			tasks.DeleteTaskHandler(database)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))
	mux.HandleFunc("/api/tasks/status", mw.Wrap(tasks.SetTaskStatusHandler(database, sessions)))

	// ----- MOOD API -----
	mux.HandleFunc("/api/mood", mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			moods.LatestHandler(database)(w, r)
		case http.MethodPost:
			moods.CheckinHandler(database)(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// ----- ASSISTANT API -----
	mux.HandleFunc("/api/assistant/message", mw.Wrap(assistant.MessageHandler(database, eng, sessions, cfg)))
	mux.HandleFunc("/api/assistant/profile", mw.Wrap(assistant.ProfileHandler(sessions)))
	mux.HandleFunc("/api/assistant/end", mw.Wrap(assistant.EndSessionHandler(database, sessions)))

	// ----- ANALYTICS API -----
	mux.HandleFunc("/api/analytics/app-opened", mw.Wrap(analytics.AppOpenedHandler(database)))
	mux.HandleFunc("/api/analytics/focus-mode", mw.Wrap(analytics.FocusModeHandler(database)))
	mux.HandleFunc("/api/analytics/recommendation-feedback", mw.Wrap(analytics.RecommendationFeedbackHandler(database)))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Platform", "X-App-Version", "X-Session-Id", "Idempotency-Key"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatal("❌ Failed to listen:", err)
	}
	ln = netutil.LimitListener(ln, cfg.MaxConns)

	log.Printf("🚀 API server is running on :%d", cfg.Port)
	log.Fatal(http.Serve(ln, handler))
}
