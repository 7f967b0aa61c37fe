package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/metrics"
	"winterfieldday/logkeeper/internal/models/dtos"
	"winterfieldday/logkeeper/internal/services"
)

const (
	// exportLinkTTL bounds how long a generated download link stays
	// redeemable.
	exportLinkTTL = 15 * time.Minute

	// usedTokenRetention keeps redeemed token ids long enough to refuse
	// replays of any still-unexpired token.
	usedTokenRetention = 30 * time.Minute

	ExportFormatCabrillo = "cabrillo"
	ExportFormatADIF     = "adif"
)

// ExportLinkHandler handles POST /api/v1/exports/link
//
// Issues a signed single-use download URL for one export format.
func ExportLinkHandler(signer *common.URLSignerService, cab *services.CabrilloService, adif *services.ADIFService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ExportLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		var filename string
		var err error
		switch req.Format {
		case ExportFormatCabrillo:
			filename, err = cab.Filename(r.Context())
		case ExportFormatADIF:
			filename, err = adif.Filename(r.Context())
		default:
			common.RespondError(w, initTime, nil, "format must be cabrillo or adif", http.StatusBadRequest)
			return
		}
		if err != nil {
			if err == services.ErrNoActiveStation {
				common.RespondError(w, initTime, err, "", http.StatusConflict)
				return
			}
			common.RespondError(w, initTime, err, "Failed to prepare export")
			return
		}

		token, err := signer.GenerateExportToken(req.Format, exportLinkTTL)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to sign export link")
			return
		}

		resp := dtos.ExportLinkResponse{
			URL:       fmt.Sprintf("/api/v1/exports/%s?token=%s", req.Format, token),
			Filename:  filename,
			ExpiresIn: int(exportLinkTTL.Seconds()),
		}

		common.RespondSuccess(w, initTime, "Export link created", resp)
	}
}

// DownloadCabrilloHandler handles GET /api/v1/exports/cabrillo
func DownloadCabrilloHandler(signer *common.URLSignerService, cab *services.CabrilloService,
	metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if !redeemToken(w, r, initTime, signer, ExportFormatCabrillo) {
			return
		}

		content, err := cab.Generate(r.Context())
		if err != nil {
			if err == services.ErrNoActiveStation {
				common.RespondError(w, initTime, err, "", http.StatusConflict)
				return
			}
			common.RespondError(w, initTime, err, "Failed to generate Cabrillo export")
			return
		}

		filename, err := cab.Filename(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to generate Cabrillo export")
			return
		}

		metricsReg.ExportsGeneratedTotal.WithLabelValues(ExportFormatCabrillo).Inc()
		writeAttachment(w, filename, content)
	}
}

// DownloadADIFHandler handles GET /api/v1/exports/adif
func DownloadADIFHandler(signer *common.URLSignerService, adif *services.ADIFService,
	metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if !redeemToken(w, r, initTime, signer, ExportFormatADIF) {
			return
		}

		content, err := adif.Generate(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to generate ADIF export")
			return
		}

		filename, err := adif.Filename(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to generate ADIF export")
			return
		}

		metricsReg.ExportsGeneratedTotal.WithLabelValues(ExportFormatADIF).Inc()
		writeAttachment(w, filename, content)
	}
}

// redeemToken validates the query token for the expected format and
// burns it. Writes the error response itself on failure.
func redeemToken(w http.ResponseWriter, r *http.Request, initTime time.Time,
	signer *common.URLSignerService, format string) bool {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		common.RespondError(w, initTime, nil, "Missing token", http.StatusUnauthorized)
		return false
	}

	token, err := signer.ValidateToken(tokenString)
	if err != nil {
		common.RespondError(w, initTime, err, "", http.StatusUnauthorized)
		return false
	}

	if token.Format != format {
		common.RespondError(w, initTime, nil, "Token not valid for this export", http.StatusForbidden)
		return false
	}

	signer.MarkTokenAsUsed(token.TokenID, usedTokenRetention)
	return true
}

func writeAttachment(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write([]byte(content))
}
