// Command authentication is a development token issuer for the techjobs JSON
// API. It signs HS256 tokens with the same secret the API validates against.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gartstein/techjobs/internal/techjobs/auth"
	"github.com/gartstein/techjobs/internal/techjobs/config"
	"go.uber.org/zap"
)

const (
	defaultAddr = ":8081"
	defaultUser = "12345"
)

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func tokenHandler(secret string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		user := r.URL.Query().Get("user")
		if user == "" {
			user = defaultUser
		}

		token, err := auth.GenerateToken(user, secret)
		if err != nil {
			logger.Error("Failed to generate token", zap.Error(err))
			http.Error(w, "failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := TokenResponse{Token: token, ExpiresAt: time.Now().Add(auth.TokenTTL).UTC()}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Warn("Failed to encode token", zap.Error(err))
			return
		}
		logger.Info("Token issued", zap.String("user", user))
	}
}

func main() {
	configPath := flag.String("config", "", "config file")
	addr := flag.String("addr", envOr("AUTH_ADDR", defaultAddr), "listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("auth.jwt_secret is empty, set TECHJOBS_AUTH_JWT_SECRET")
	}

	mux := http.NewServeMux()
	mux.Handle("/token", tokenHandler(cfg.Auth.JWTSecret, logger.Named("auth")))

	logger.Info("Authentication service running", zap.String("addr", *addr))
	srv := &http.Server{Addr: *addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Authentication service stopped", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
