package routes

import (
	"github.com/go-chi/chi/v5"

	"winterfieldday/logkeeper/internal/api"
	"winterfieldday/logkeeper/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	repos := deps.Repo
	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {

		v1.Route("/contacts", func(contacts chi.Router) {
			contacts.Get("/", api.ListContactsHandler(repos.Contacts))
			contacts.Post("/", api.CreateContactHandler(repos.Contacts, repos.Stations, svcs.Stats, deps.Metrics))

			// Fired on every callsign keystroke, so rate limited.
			contacts.Group(func(limited chi.Router) {
				limited.Use(middleware.RateLimitMiddleware)
				limited.Get("/check-duplicate", api.CheckDuplicateHandler(svcs.Duplicates, deps.Metrics))
			})

			contacts.Get("/{id}", api.GetContactHandler(repos.Contacts))
			contacts.Put("/{id}", api.UpdateContactHandler(repos.Contacts, svcs.Stats))
			contacts.Delete("/{id}", api.DeleteContactHandler(repos.Contacts, svcs.Stats))
		})

		v1.Route("/stations", func(stations chi.Router) {
			stations.Get("/", api.ListStationsHandler(repos.Stations))
			stations.Post("/", api.CreateStationHandler(repos.Stations))
			stations.Route("/active", func(active chi.Router) {
				active.Get("/", api.ActiveStationHandler(repos.Stations))
				active.Get("/operators", api.OperatorsHandler(svcs.Stations))
				active.Get("/timezone", api.StationTimezoneHandler(svcs.Stations))
			})
			stations.Get("/{id}", api.GetStationHandler(repos.Stations))
			stations.Put("/{id}", api.UpdateStationHandler(repos.Stations))
			stations.Delete("/{id}", api.DeleteStationHandler(repos.Stations))
			stations.Post("/{id}/activate", api.ActivateStationHandler(repos.Stations, deps.Metrics))
		})

		v1.Route("/objectives", func(objectives chi.Router) {
			objectives.Get("/", api.ListObjectivesHandler(repos.Objectives))
			objectives.Put("/{id}", api.UpdateObjectiveHandler(repos.Objectives))
		})

		v1.Get("/score", api.ScoreHandler(svcs.Scoring))

		v1.Route("/stats", func(stats chi.Router) {
			stats.Get("/summary", api.StatsSummaryHandler(svcs.Stats))
			stats.Get("/activity", api.ActivityHandler(svcs.Stats))
		})

		v1.Get("/map", api.MapHandler(svcs.Stats))

		v1.Route("/exports", func(exports chi.Router) {
			exports.Post("/link", api.ExportLinkHandler(svcs.Signer, svcs.Cabrillo, svcs.ADIF))
			exports.Get("/cabrillo", api.DownloadCabrilloHandler(svcs.Signer, svcs.Cabrillo, deps.Metrics))
			exports.Get("/adif", api.DownloadADIFHandler(svcs.Signer, svcs.ADIF, deps.Metrics))
		})
	})
}
