package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dwelloBack/internal/models"
)

const refreshedAccessTTL = 20 * time.Hour

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// JWTMiddleware verifies the access token, falling back to the Refresh-Token
// header when it has expired. On refresh a new access token comes back in the
// Authorization response header.
func (app *application) JWTMiddleware(next http.Handler, requiredRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			authError(w, "Authorization header missing or invalid")
			return
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := app.tokens.ParseAccessToken(accessToken)
		if err != nil {
			refreshToken := r.Header.Get("Refresh-Token")
			if refreshToken == "" {
				authError(w, "Refresh token missing")
				return
			}

			session, err := app.userRepo.GetSessionByToken(r.Context(), refreshToken)
			if err != nil || session == (models.Session{}) {
				authError(w, "Invalid refresh token")
				return
			}
			if session.ExpiresAt.Before(time.Now()) {
				authError(w, "Expired refresh token")
				return
			}

			newAccessToken, err := app.tokens.NewAccessToken(session.UserID, session.Role, refreshedAccessTTL)
			if err != nil {
				app.serverError(w, err)
				return
			}
			w.Header().Set("Authorization", "Bearer "+newAccessToken)

			claims = &models.Claims{UserID: uint(session.UserID), Role: session.Role}
		}

		switch requiredRole {
		case "admin":
			if claims.Role != "admin" {
				roleError(w, "admins")
				return
			}
		case "homeowner":
			if claims.Role != "homeowner" && claims.Role != "admin" {
				roleError(w, "homeowners")
				return
			}
		case "pro":
			if claims.Role != "pro" && claims.Role != "admin" {
				roleError(w, "pros")
				return
			}
		}

		ctx := context.WithValue(r.Context(), "user_id", int(claims.UserID))
		ctx = context.WithValue(ctx, "role", claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error": %q}`, message)
}

func roleError(w http.ResponseWriter, who string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, `{"error": "Forbidden: only %s or admins allowed"}`, who)
}
