package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type contextString string

const callerContext contextString = "__callerContext"

//corsOptions setting up routes for cors
func corsOptions() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-User-ID", "Cache-Control", "Pragma"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}

//CommonMiddlewares middleware common for all routes
func CommonMiddlewares() chi.Middlewares {
	return chi.Chain(
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("Content-Type", "application/json")
				next.ServeHTTP(w, r)
			})
		},
		corsOptions().Handler,
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

				defer func() {
					err := recover()
					if err != nil {
						logrus.Errorf("Request Panic err: %v", err)
						jsonBody, _ := json.Marshal(map[string]string{
							"error": "There was an internal server error",
						})
						w.Header().Set("Content-Type", "application/json")
						w.WriteHeader(http.StatusInternalServerError)
						_, err := w.Write(jsonBody)
						if err != nil {
							logrus.Errorf("Failed to send response from middleware with error: %+v", err)
						}
					}
				}()

				next.ServeHTTP(w, r)

			})
		},
	)
}

//Identity resolves the caller's user id once per request: the X-User-ID
//header wins, then the userId query parameter, then the configured default.
//Handlers read the result with CallerID instead of assuming an identity.
func Identity(defaultUserID int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := defaultUserID
			if header := r.Header.Get("X-User-ID"); header != "" {
				if id, err := strconv.Atoi(header); err == nil && id > 0 {
					userID = id
				}
			} else if query := r.URL.Query().Get("userId"); query != "" {
				if id, err := strconv.Atoi(query); err == nil && id > 0 {
					userID = id
				}
			}

			ctx := context.WithValue(r.Context(), callerContext, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

//CallerID returns the user id resolved by the Identity middleware, or 0 when
//the middleware did not run
func CallerID(r *http.Request) int {
	if userID, ok := r.Context().Value(callerContext).(int); ok {
		return userID
	}
	return 0
}
