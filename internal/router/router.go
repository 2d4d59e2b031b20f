package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "dental-clinical-records/docs"
	mem "dental-clinical-records/internal/adapters/storage/memory"
	pg "dental-clinical-records/internal/adapters/storage/postgres"
	"dental-clinical-records/internal/domain/followup"
	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/domain/treatments"
	"dental-clinical-records/internal/middleware"
	"dental-clinical-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger zerolog.Logger

	// nil => análisis de riesgo deshabilitado (responde con diagnóstico).
	TextGenerator followup.TextGenerator

	// Vacío => "*".
	CORSOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recover(opts.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		patientRepo   patients.Repository
		treatmentRepo treatments.Repository
	)

	if opts.DB != nil {
		patientRepo = pg.NewPatientsRepo(opts.DB)
		treatmentRepo = pg.NewTreatmentsRepo(opts.DB)
	} else {
		patientRepo = mem.NewPatientRepo()
		treatmentRepo = mem.NewTreatmentRepo(patientRepo)
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	treatmentsSvc := treatments.NewService(treatmentRepo, patientsSvc)
	followupSvc := followup.NewService(
		patientsSvc,
		treatmentsSvc,
		followup.NewComposer(),
		followup.NewGenerator(opts.TextGenerator, opts.Logger.With().Str("component", "followup").Logger()),
	)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc)
	treatments.RegisterRoutes(r, treatmentsSvc)
	followup.RegisterRoutes(r, followupSvc)

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respond.JSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Storage: "postgres"})
			return
		}
		respond.JSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "postgres"})
	}
}
