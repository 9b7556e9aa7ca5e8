package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging)

	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", identityHeader, traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.cfg.LoginRateLimit > 0 {
			r.Use(httprate.Limit(h.cfg.LoginRateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					writeError(w, r, ErrTooManyRequests)
				}),
			))
		}
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
	})

	router.Post("/api/users/logout", h.logout)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/parking-lots", h.listParkingLots)
	router.Get("/api/parking-lots/search", h.searchParkingLots)
	router.Get("/api/parking-lots/{p_id}", h.getParkingLot)
	router.Handle("/metrics", promhttp.Handler())

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.identify)

		r.Get("/api/users/mypage", h.getProfile)
		r.Patch("/api/users/mypage", h.updateProfile)
		r.Patch("/api/users/password", h.changePassword)
		r.Delete("/api/users", h.deleteSelf)

		r.Get("/api/bookmarks", h.listBookmarks)
		r.Post("/api/bookmarks", h.addBookmark)
		r.Delete("/api/bookmarks/{p_id}", h.removeBookmark)

		r.Get("/api/ratings", h.listRatings)
		r.Post("/api/ratings", h.createRating)
		r.Patch("/api/ratings", h.updateRating)
		r.Delete("/api/ratings", h.deleteRatingByBody)
		r.Delete("/api/ratings/{rating_id}", h.deleteRating)

		r.Post("/api/parking-lots/recommendations/nearby", h.recommendNearby)
		r.Post("/api/parking-lots/recommendations/destination", h.recommendDestination)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.identify, h.adminOnly)

		r.Get("/admin/api/users", h.adminListUsers)
		r.Get("/admin/api/users/search", h.adminSearchUsers)
		r.Delete("/admin/api/users/{id}", h.adminDeleteUser)

		r.Get("/admin/api/parking-lots", h.adminListParkingLots)
		r.Get("/admin/api/parking-lots/search", h.adminSearchParkingLots)
		r.Post("/admin/api/parking-lots", h.adminCreateParkingLot)
		r.Patch("/admin/api/parking-lots", h.adminUpdateParkingLot)
		r.Delete("/admin/api/parking-lots/{p_id}", h.adminDeleteParkingLot)
		r.Post("/admin/api/parking-lots/scores", h.adminRefreshScores)

		r.Get("/admin/api/ratings", h.adminListRatings)
		r.Get("/admin/api/ratings/search", h.adminSearchRatings)
		r.Delete("/admin/api/ratings/{rating_id}", h.adminDeleteRating)
	})

	if h.cfg.StaticDir != "" {
		router.Get("/*", spaHandler(h.cfg.StaticDir))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
