package treatments

import (
	"encoding/json"
	"net/http"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/platform/apperr"
	"dental-clinical-records/internal/platform/respond"
	"dental-clinical-records/internal/platform/timestamp"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/treatments", createTreatmentHandler(svc))
	r.Get("/api/treatments/{treatmentID}", getTreatmentHandler(svc))
	r.Get("/api/patients/{patientID}/treatments", listPatientTreatmentsHandler(svc))
}

// createTreatmentRequest es el cuerpo para registrar un tratamiento.
type createTreatmentRequest struct {
	PatientID     int64   `json:"patient_id"`
	TreatmentType string  `json:"treatment_type"`
	Date          *string `json:"date"` // RFC3339, obligatorio
	Status        *string `json:"status"`
	Complications *string `json:"complications"`
	NextFollowUp  *string `json:"next_follow_up"`
}

// TreatmentResponse es el objeto de transporte de un tratamiento.
type TreatmentResponse struct {
	ID            int64   `json:"id"`
	PatientID     int64   `json:"patient_id"`
	TreatmentType string  `json:"treatment_type"`
	Date          string  `json:"date"`
	Status        *string `json:"status"`
	Complications *string `json:"complications"`
	NextFollowUp  *string `json:"next_follow_up"`
	CreatedAt     string  `json:"created_at"`
}

// createTreatmentHandler godoc
// @Summary Registrar tratamiento
// @Description Crea un tratamiento para un paciente existente. `date` es obligatorio (RFC3339).
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body createTreatmentRequest true "Datos del tratamiento"
// @Success 201 {object} TreatmentResponse
// @Failure 400 {object} respond.ErrorBody "validation"
// @Failure 404 {object} respond.ErrorBody "patient not found"
// @Failure 500 {object} respond.ErrorBody "persistence"
// @Router /api/treatments [post]
func createTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req createTreatmentRequest
		if err := dec.Decode(&req); err != nil {
			respond.Invalid(w, "", "invalid json")
			return
		}

		date, err := timestamp.Parse("date", req.Date)
		if err != nil {
			respond.Error(w, err)
			return
		}
		if date == nil {
			respond.Error(w, apperr.Validation("date", "is required"))
			return
		}
		nextFollowUp, err := timestamp.Parse("next_follow_up", req.NextFollowUp)
		if err != nil {
			respond.Error(w, err)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			PatientID:     req.PatientID,
			TreatmentType: req.TreatmentType,
			Date:          date,
			Status:        req.Status,
			Complications: req.Complications,
			NextFollowUp:  nextFollowUp,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, ToResponse(t))
	}
}

// getTreatmentHandler godoc
// @Summary Obtener tratamiento
// @Tags treatments
// @Produce json
// @Param treatmentID path int true "ID del tratamiento"
// @Success 200 {object} TreatmentResponse
// @Failure 404 {object} respond.ErrorBody "treatment not found"
// @Router /api/treatments/{treatmentID} [get]
func getTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := patients.PathID(r, "treatmentID")
		if !ok {
			respond.Error(w, ErrNotFound)
			return
		}
		t, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(t))
	}
}

// listPatientTreatmentsHandler godoc
// @Summary Listar tratamientos de un paciente
// @Description Más reciente primero.
// @Tags treatments
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {array} TreatmentResponse
// @Failure 404 {object} respond.ErrorBody "patient not found"
// @Router /api/patients/{patientID}/treatments [get]
func listPatientTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID, ok := patients.PathID(r, "patientID")
		if !ok {
			respond.Error(w, patients.ErrNotFound)
			return
		}
		items, err := svc.ListByPatient(r.Context(), patientID)
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]TreatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, ToResponse(t))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func ToResponse(t Treatment) TreatmentResponse {
	return TreatmentResponse{
		ID:            t.ID,
		PatientID:     t.PatientID,
		TreatmentType: t.TreatmentType,
		Date:          timestamp.Format(t.Date),
		Status:        t.Status,
		Complications: t.Complications,
		NextFollowUp:  timestamp.FormatPtr(t.NextFollowUp),
		CreatedAt:     timestamp.Format(t.CreatedAt),
	}
}
