package api

import (
	"net/http"
	"time"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/services"
)

// ScoreHandler handles GET /api/v1/score
//
// Always a fresh full recomputation over the log.
func ScoreHandler(scoring *services.ScoringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		breakdown, err := scoring.Calculate(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to calculate score")
			return
		}

		common.RespondSuccess(w, initTime, "Score calculated", breakdown)
	}
}
