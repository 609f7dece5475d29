package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"wellnesshub/pkg/authsess"
	"wellnesshub/pkg/claims"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
)

var (
	noSessUrls = map[string]string{
		"/api/login":                      http.MethodPost,
		"/api/register":                   http.MethodPost,
		"/api/sessions":                   http.MethodGet,
		"/api/sessions/{id:[a-zA-Z0-9]+}": http.MethodGet,
	}
)

func CheckJWT(sessionStore authsess.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()

			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := noSessUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			token := extractToken(r)
			if token == "" {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
				method, ok := token.Method.(*jwt.SigningMethodHMAC)
				if !ok || method.Alg() != "HS256" {
					http.Error(w, "bad sign method", http.StatusUnauthorized)
					return nil, nil
				}
				JWTSecret := os.Getenv("JWT_SECRET")
				return []byte(JWTSecret), nil
			}

			parsed := &claims.Claims{}

			tkn, err := jwt.ParseWithClaims(token, parsed, hashSecretGetter)
			if err != nil || !tkn.Valid || parsed.User.ID == "" {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ok, err := sessionStore.IsValid(parsed.User.ID)
			if err != nil || !ok {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, parsed)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken accepts the x-auth-token header or an Authorization bearer.
func extractToken(r *http.Request) string {
	if token := r.Header.Get("x-auth-token"); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
