package api

import (
	"net/http"
	"time"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/services"
)

// StatsSummaryHandler handles GET /api/v1/stats/summary
func StatsSummaryHandler(stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		summary, err := stats.Summary(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build stats summary")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched stats summary", summary)
	}
}

// ActivityHandler handles GET /api/v1/stats/activity
//
// Returns the band, temporal, and mode aggregations in one response.
func ActivityHandler(stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report, err := stats.Activity(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build activity report")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched activity report", report)
	}
}

// MapHandler handles GET /api/v1/map
func MapHandler(stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := stats.MapData(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build map data")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched map data", data)
	}
}
