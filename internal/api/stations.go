package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/metrics"
	"winterfieldday/logkeeper/internal/models/dtos"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
	"winterfieldday/logkeeper/internal/services"
)

func setupResponse(s *gormModels.StationSetup, activeID *uint) *dtos.StationSetupResponse {
	isActive := activeID != nil && *activeID == s.ID

	resp := &dtos.StationSetupResponse{
		ID:                  s.ID,
		SetupName:           s.SetupName,
		StationCallsign:     s.StationCallsign,
		OperatorName:        s.OperatorName,
		OperatorCallsign:    s.OperatorCallsign,
		Category:            s.Category,
		Section:             s.Section,
		Timezone:            s.Timezone,
		PowerLevel:          s.PowerLevel,
		Location:            s.Location,
		GridSquare:          s.GridSquare,
		AdditionalOperators: s.AdditionalOperators,
		EquipmentNotes:      s.EquipmentNotes,
		IsActive:            isActive,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if isActive {
		resp.DefaultExchange = services.DefaultExchange(s.Category, s.Section)
	}
	return resp
}

func setupFromRequest(req *dtos.StationSetupRequest, setup *gormModels.StationSetup) {
	setup.SetupName = req.SetupName
	setup.StationCallsign = strings.ToUpper(strings.TrimSpace(req.StationCallsign))
	setup.OperatorName = req.OperatorName
	setup.OperatorCallsign = strings.ToUpper(strings.TrimSpace(req.OperatorCallsign))
	setup.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	setup.Section = strings.ToUpper(strings.TrimSpace(req.Section))
	setup.PowerLevel = req.PowerLevel
	setup.Location = req.Location
	setup.AdditionalOperators = req.AdditionalOperators
	setup.EquipmentNotes = req.EquipmentNotes

	setup.Timezone = nil
	if req.Timezone != "" {
		tz := req.Timezone
		setup.Timezone = &tz
	}
	setup.GridSquare = nil
	if req.GridSquare != "" {
		grid := strings.ToUpper(req.GridSquare)
		setup.GridSquare = &grid
	}
}

func validateSetupRequest(req *dtos.StationSetupRequest) (string, bool) {
	switch {
	case strings.TrimSpace(req.StationCallsign) == "":
		return "station_callsign is required", false
	case strings.TrimSpace(req.OperatorName) == "":
		return "operator_name is required", false
	case strings.TrimSpace(req.OperatorCallsign) == "":
		return "operator_callsign is required", false
	case strings.TrimSpace(req.Category) == "":
		return "category is required", false
	case strings.TrimSpace(req.Section) == "":
		return "section is required", false
	}
	return "", true
}

// ListStationsHandler handles GET /api/v1/stations
func ListStationsHandler(stations *repositories.StationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		setups, err := stations.All(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list station setups")
			return
		}

		activeID, err := stations.ActiveID(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to resolve active station")
			return
		}

		list := make([]dtos.StationSetupResponse, 0, len(setups))
		for i := range setups {
			list = append(list, *setupResponse(&setups[i], activeID))
		}

		common.RespondSuccess(w, initTime, "Fetched station setups", list)
	}
}

// CreateStationHandler handles POST /api/v1/stations
func CreateStationHandler(stations *repositories.StationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.StationSetupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if msg, ok := validateSetupRequest(&req); !ok {
			common.RespondError(w, initTime, nil, msg, http.StatusBadRequest)
			return
		}

		setup := &gormModels.StationSetup{}
		setupFromRequest(&req, setup)
		if setup.SetupName == "" {
			setup.SetupName = "Default Setup"
		}

		if err := stations.Create(r.Context(), setup); err != nil {
			common.RespondError(w, initTime, err, "Failed to create station setup")
			return
		}

		activeID, _ := stations.ActiveID(r.Context())
		common.RespondSuccess(w, initTime, "Station setup created", setupResponse(setup, activeID), http.StatusCreated)
	}
}

// GetStationHandler handles GET /api/v1/stations/{id}
func GetStationHandler(stations *repositories.StationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		setup, err := stations.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch station setup")
			return
		}
		if setup == nil {
			common.RespondError(w, initTime, nil, "Station setup not found", http.StatusNotFound)
			return
		}

		activeID, err := stations.ActiveID(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to resolve active station")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched station setup", setupResponse(setup, activeID))
	}
}

// UpdateStationHandler handles PUT /api/v1/stations/{id}
func UpdateStationHandler(stations *repositories.StationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		setup, err := stations.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch station setup")
			return
		}
		if setup == nil {
			common.RespondError(w, initTime, nil, "Station setup not found", http.StatusNotFound)
			return
		}

		var req dtos.StationSetupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if msg, ok := validateSetupRequest(&req); !ok {
			common.RespondError(w, initTime, nil, msg, http.StatusBadRequest)
			return
		}

		setupFromRequest(&req, setup)

		if err := stations.Update(r.Context(), setup); err != nil {
			common.RespondError(w, initTime, err, "Failed to update station setup")
			return
		}

		activeID, _ := stations.ActiveID(r.Context())
		common.RespondSuccess(w, initTime, "Station setup updated", setupResponse(setup, activeID))
	}
}

// DeleteStationHandler handles DELETE /api/v1/stations/{id}
//
// The active setup cannot be deleted; activate another one first.
func DeleteStationHandler(stations *repositories.StationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		if err := stations.Delete(r.Context(), id); err != nil {
			switch err {
			case repositories.ErrSetupNotFound:
				common.RespondError(w, initTime, err, "", http.StatusNotFound)
			case repositories.ErrSetupActive:
				common.RespondError(w, initTime, err, "", http.StatusConflict)
			default:
				common.RespondError(w, initTime, err, "Failed to delete station setup")
			}
			return
		}

		common.RespondSuccess(w, initTime, "Station setup deleted", nil)
	}
}

// ActivateStationHandler handles POST /api/v1/stations/{id}/activate
func ActivateStationHandler(stations *repositories.StationRepository, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		if err := stations.Activate(r.Context(), id); err != nil {
			if err == repositories.ErrSetupNotFound {
				common.RespondError(w, initTime, err, "", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to activate station setup")
			return
		}

		metricsReg.StationActivationsTotal.Inc()

		setup, err := stations.GetByID(r.Context(), id)
		if err != nil || setup == nil {
			common.RespondError(w, initTime, err, "Failed to fetch station setup")
			return
		}

		common.RespondSuccess(w, initTime, "Station setup activated", setupResponse(setup, &id))
	}
}

// ActiveStationHandler handles GET /api/v1/stations/active
func ActiveStationHandler(stations *repositories.StationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		setup, err := stations.Active(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to resolve active station")
			return
		}
		if setup == nil {
			common.RespondSuccess(w, initTime, "No active station setup", nil)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched active station", setupResponse(setup, &setup.ID))
	}
}

// OperatorsHandler handles GET /api/v1/stations/active/operators
func OperatorsHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		operators, err := stationSvc.Operators(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build operator roster")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched operators", operators)
	}
}

// StationTimezoneHandler handles GET /api/v1/stations/active/timezone
func StationTimezoneHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tz, err := stationSvc.Timezone(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to resolve timezone")
			return
		}

		common.RespondSuccess(w, initTime, "Fetched station timezone", tz)
	}
}
