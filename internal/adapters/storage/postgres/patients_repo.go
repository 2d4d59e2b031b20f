package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/platform/apperr"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientColumns = `
	id, name, email, phone,
	last_visit, next_visit,
	treatment_status, risk_level, notes,
	created_at`

// Create inserta y devuelve el paciente con el id asignado por la secuencia.
// Un único INSERT: si falla no queda nada escrito.
func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (
			name, email, phone,
			last_visit, next_visit,
			treatment_status, risk_level, notes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		p.Name,
		toNullString(p.Email),
		toNullString(p.Phone),
		toNullTime(p.LastVisit),
		toNullTime(p.NextVisit),
		toNullString(p.TreatmentStatus),
		toNullString(p.RiskLevel),
		toNullString(p.Notes),
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return patients.Patient{}, patients.ErrEmailTaken
		}
		return patients.Patient{}, apperr.Persistence("insert patient", err)
	}
	return p, nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)

	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, apperr.Persistence("get patient", err)
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY id ASC`)
	if err != nil {
		return nil, apperr.Persistence("list patients", err)
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, apperr.Persistence("list patients", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list patients", err)
	}
	return out, nil
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(s rowScanner) (patients.Patient, error) {
	var (
		p                                 patients.Patient
		email, phone, status, risk, notes sql.NullString
		lastVisit, nextVisit              sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&email,
		&phone,
		&lastVisit,
		&nextVisit,
		&status,
		&risk,
		&notes,
		&p.CreatedAt,
	); err != nil {
		return patients.Patient{}, err
	}

	p.Email = fromNullString(email)
	p.Phone = fromNullString(phone)
	p.LastVisit = fromNullTime(lastVisit)
	p.NextVisit = fromNullTime(nextVisit)
	p.TreatmentStatus = fromNullString(status)
	p.RiskLevel = fromNullString(risk)
	p.Notes = fromNullString(notes)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
