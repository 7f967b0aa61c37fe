package api

import (
	"encoding/json"
	"net/http"
	"time"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/models/dtos"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

func objectiveResponse(o *gormModels.Objective) dtos.ObjectiveResponse {
	return dtos.ObjectiveResponse{
		ID:              o.ID,
		Name:            o.Name,
		Description:     o.Description,
		Multiplier:      o.Multiplier,
		Completed:       o.Completed,
		CompletionNotes: o.CompletionNotes,
		CompletedAt:     o.CompletedAt,
	}
}

// ListObjectivesHandler handles GET /api/v1/objectives
//
// Seeds the fixed catalog on first access.
func ListObjectivesHandler(objectives *repositories.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := objectives.SeedIfEmpty(r.Context()); err != nil {
			common.RespondError(w, initTime, err, "Failed to seed objectives")
			return
		}

		all, err := objectives.All(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list objectives")
			return
		}

		list := dtos.ObjectiveListResponse{
			Objectives: make([]dtos.ObjectiveResponse, 0, len(all)),
		}
		for i := range all {
			list.Objectives = append(list.Objectives, objectiveResponse(&all[i]))
			if all[i].Completed {
				list.TotalMultiplier += all[i].Multiplier
			}
		}

		common.RespondSuccess(w, initTime, "Fetched objectives", list)
	}
}

// UpdateObjectiveHandler handles PUT /api/v1/objectives/{id}
//
// Completion stamps the time; clearing completion clears it.
func UpdateObjectiveHandler(objectives *repositories.ObjectiveRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		objective, err := objectives.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch objective")
			return
		}
		if objective == nil {
			common.RespondError(w, initTime, nil, "Objective not found", http.StatusNotFound)
			return
		}

		var req dtos.ObjectiveUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Completed != objective.Completed {
			objective.Completed = req.Completed
			objective.CompletedAt = nil
			if req.Completed {
				now := time.Now().UTC()
				objective.CompletedAt = &now
			}
		}

		objective.CompletionNotes = nil
		if req.CompletionNotes != "" {
			notes := req.CompletionNotes
			objective.CompletionNotes = &notes
		}

		if err := objectives.Update(r.Context(), objective); err != nil {
			common.RespondError(w, initTime, err, "Failed to update objective")
			return
		}

		resp := objectiveResponse(objective)
		common.RespondSuccess(w, initTime, "Objective updated", resp)
	}
}
