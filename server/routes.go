package server

import (
	"net/http"

	"github.com/RemoteState/localnews-server/handlers"
	"github.com/RemoteState/localnews-server/middlewares"
	"github.com/RemoteState/localnews-server/models"
	"github.com/RemoteState/localnews-server/utils"
	"github.com/go-chi/chi"
)

type Server struct {
	chi.Router
}

// SetupRoutes provides all the routes that can be used
func SetupRoutes(defaultUserID int) *Server {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.CommonMiddlewares()...)
		r.Use(middlewares.Identity(defaultUserID))

		// health endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			utils.RespondJSON(w, 200, models.Response{Success: true})
		})

		r.Route("/addresses", func(r chi.Router) {
			r.Post("/search", handlers.SearchAddress)
			r.Get("/", handlers.GetAllAddresses)
			r.Get("/stats", handlers.GetStats)
			r.Get("/history", handlers.GetSearchHistory)
			r.Get("/recent", handlers.GetRecentSearches)
			r.Get("/{id}", handlers.GetAddressByID)
			r.Delete("/{id}", handlers.DeleteAddress)
		})
	})
	return &Server{Router: router}
}

func (svc *Server) Run(port string) error {
	return http.ListenAndServe(port, svc)
}
