package followup

import (
	"net/http"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/platform/apperr"
	"dental-clinical-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const statusOK = "ok"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/patients/{patientID}/risk", riskHandler(svc))
	r.Get("/api/patients/{patientID}/reminder", reminderHandler(svc))
}

// riskResponse lleva el texto del LLM sin modificar, o el diagnóstico.
// Status es "ok" o el kind del resultado (missing_data, configuration, external_service).
type riskResponse struct {
	RiskAnalysis string `json:"risk_analysis"`
	Status       string `json:"status"`
}

type reminderResponse struct {
	Reminder       string  `json:"reminder"`
	Status         string  `json:"status"`
	RiskLevel      *string `json:"risk_level"`
	DaysSinceVisit *int    `json:"days_since_visit"`
}

// riskHandler godoc
// @Summary Análisis de riesgo (IA)
// @Description Pide al servicio de texto una evaluación de riesgos por falta de seguimiento. Sin last_visit, sin credencial configurada o ante una falla del servicio responde 200 con un texto de diagnóstico y `status` distinto de "ok".
// @Tags followup
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} riskResponse
// @Failure 404 {object} respond.ErrorBody "patient not found"
// @Failure 500 {object} respond.ErrorBody "persistence"
// @Router /api/patients/{patientID}/risk [get]
func riskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := patients.PathID(r, "patientID")
		if !ok {
			respond.Error(w, patients.ErrNotFound)
			return
		}

		text, err := svc.RiskAnalysis(r.Context(), id)
		if err != nil {
			if !IsOutcome(err) {
				respond.Error(w, err)
				return
			}
			respond.JSON(w, http.StatusOK, riskResponse{
				RiskAnalysis: err.Error(),
				Status:       string(apperr.KindOf(err)),
			})
			return
		}

		respond.JSON(w, http.StatusOK, riskResponse{RiskAnalysis: text, Status: statusOK})
	}
}

// reminderHandler godoc
// @Summary Recordatorio de seguimiento
// @Description Compone el recordatorio con días desde la última visita y nivel de riesgo (Low/Medium/High).
// @Tags followup
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} reminderResponse
// @Failure 404 {object} respond.ErrorBody "patient not found"
// @Failure 500 {object} respond.ErrorBody "persistence"
// @Router /api/patients/{patientID}/reminder [get]
func reminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := patients.PathID(r, "patientID")
		if !ok {
			respond.Error(w, patients.ErrNotFound)
			return
		}

		rem, err := svc.Reminder(r.Context(), id)
		if err != nil {
			if !IsOutcome(err) {
				respond.Error(w, err)
				return
			}
			respond.JSON(w, http.StatusOK, reminderResponse{
				Reminder: err.Error(),
				Status:   string(apperr.KindOf(err)),
			})
			return
		}

		tier := string(rem.RiskLevel)
		days := rem.DaysSinceVisit
		respond.JSON(w, http.StatusOK, reminderResponse{
			Reminder:       rem.Text(),
			Status:         statusOK,
			RiskLevel:      &tier,
			DaysSinceVisit: &days,
		})
	}
}
