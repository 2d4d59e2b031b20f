package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dental-clinical-records/internal/domain/treatments"
	"dental-clinical-records/internal/platform/apperr"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

const treatmentColumns = `
	id, patient_id,
	treatment_type, date,
	status, complications, next_follow_up,
	created_at`

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO treatments (
			patient_id,
			treatment_type, date,
			status, complications, next_follow_up,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		t.PatientID,
		t.TreatmentType,
		t.Date,
		toNullString(t.Status),
		toNullString(t.Complications),
		toNullTime(t.NextFollowUp),
		t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return treatments.Treatment{}, treatments.ErrPatientNotFound
		}
		return treatments.Treatment{}, apperr.Persistence("insert treatment", err)
	}
	return t, nil
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id int64) (treatments.Treatment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+treatmentColumns+` FROM treatments WHERE id = $1`, id)

	t, err := scanTreatment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return treatments.Treatment{}, treatments.ErrNotFound
		}
		return treatments.Treatment{}, apperr.Persistence("get treatment", err)
	}
	return t, nil
}

func (r *TreatmentsRepo) ListByPatient(ctx context.Context, patientID int64) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM treatments
		WHERE patient_id = $1
		ORDER BY date DESC, id DESC
	`, patientID)
	if err != nil {
		return nil, apperr.Persistence("list treatments", err)
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, apperr.Persistence("list treatments", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list treatments", err)
	}
	return out, nil
}

func scanTreatment(s rowScanner) (treatments.Treatment, error) {
	var (
		t                     treatments.Treatment
		status, complications sql.NullString
		followUp              sql.NullTime
	)
	if err := s.Scan(
		&t.ID,
		&t.PatientID,
		&t.TreatmentType,
		&t.Date,
		&status,
		&complications,
		&followUp,
		&t.CreatedAt,
	); err != nil {
		return treatments.Treatment{}, err
	}

	t.Status = fromNullString(status)
	t.Complications = fromNullString(complications)
	t.NextFollowUp = fromNullTime(followUp)
	t.Date = t.Date.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
