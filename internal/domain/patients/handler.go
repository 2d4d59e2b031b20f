package patients

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-clinical-records/internal/platform/respond"
	"dental-clinical-records/internal/platform/timestamp"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/patients", listPatientsHandler(svc))
	r.Post("/api/patients", createPatientHandler(svc))
	r.Get("/api/patients/{patientID}", getPatientHandler(svc))
}

// createPatientRequest es el cuerpo para registrar un paciente.
// Timestamps en RFC3339; campos opcionales pueden omitirse o venir en null.
type createPatientRequest struct {
	Name            string  `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	LastVisit       *string `json:"last_visit"`
	NextVisit       *string `json:"next_visit"`
	TreatmentStatus *string `json:"treatment_status"`
	Notes           *string `json:"notes"`
}

// PatientResponse es el objeto de transporte de un paciente: plano, con null
// explícito para cada opcional ausente.
type PatientResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	LastVisit       *string `json:"last_visit"`
	NextVisit       *string `json:"next_visit"`
	TreatmentStatus *string `json:"treatment_status"`
	RiskLevel       *string `json:"risk_level"`
	Notes           *string `json:"notes"`
	CreatedAt       string  `json:"created_at"`
}

// createPatientHandler godoc
// @Summary Registrar paciente
// @Description Crea un paciente. `name` es obligatorio; `email`, si viene, debe ser único. Timestamps en RFC3339.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body createPatientRequest true "Datos del paciente"
// @Success 201 {object} PatientResponse
// @Failure 400 {object} respond.ErrorBody "validation"
// @Failure 409 {object} respond.ErrorBody "email already registered"
// @Failure 500 {object} respond.ErrorBody "persistence"
// @Router /api/patients [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req createPatientRequest
		if err := dec.Decode(&req); err != nil {
			respond.Invalid(w, "", "invalid json")
			return
		}

		lastVisit, err := timestamp.Parse("last_visit", req.LastVisit)
		if err != nil {
			respond.Error(w, err)
			return
		}
		nextVisit, err := timestamp.Parse("next_visit", req.NextVisit)
		if err != nil {
			respond.Error(w, err)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			LastVisit:       lastVisit,
			NextVisit:       nextVisit,
			TreatmentStatus: req.TreatmentStatus,
			Notes:           req.Notes,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, ToResponse(p))
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Tags patients
// @Produce json
// @Success 200 {array} PatientResponse
// @Failure 500 {object} respond.ErrorBody "persistence"
// @Router /api/patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]PatientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, ToResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags patients
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} PatientResponse
// @Failure 404 {object} respond.ErrorBody "patient not found"
// @Router /api/patients/{patientID} [get]
func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(r, "patientID")
		if !ok {
			respond.Error(w, ErrNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(p))
	}
}

// PathID lee un ID numérico positivo de la ruta. Lo usan también followup y treatments.
func PathID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ToResponse(p Patient) PatientResponse {
	return PatientResponse{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		LastVisit:       timestamp.FormatPtr(p.LastVisit),
		NextVisit:       timestamp.FormatPtr(p.NextVisit),
		TreatmentStatus: p.TreatmentStatus,
		RiskLevel:       p.RiskLevel,
		Notes:           p.Notes,
		CreatedAt:       timestamp.Format(p.CreatedAt),
	}
}
