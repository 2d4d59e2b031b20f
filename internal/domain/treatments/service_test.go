package treatments

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID   map[int64]Treatment
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Treatment{}}
}

func (r *testRepo) Create(ctx context.Context, t Treatment) (Treatment, error) {
	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	return t, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Treatment, error) {
	t, ok := r.byID[id]
	if !ok {
		return Treatment{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) ListByPatient(ctx context.Context, patientID int64) ([]Treatment, error) {
	out := make([]Treatment, 0)
	for _, t := range r.byID {
		if t.PatientID == patientID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// fakePatients simula patients.Service.
type fakePatients struct {
	known map[int64]bool
	err   error
}

func (f fakePatients) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	if f.err != nil {
		return patients.Patient{}, f.err
	}
	if !f.known[id] {
		return patients.Patient{}, patients.ErrNotFound
	}
	return patients.Patient{ID: id, Name: "P"}, nil
}

func newTestService(known ...int64) *Service {
	m := map[int64]bool{}
	for _, id := range known {
		m[id] = true
	}
	svc := NewService(newTestRepo(), fakePatients{known: m})
	svc.now = func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func tp(t time.Time) *time.Time { return &t }

func TestCreate_OK(t *testing.T) {
	svc := newTestService(1)
	date := time.Date(2026, 9, 20, 15, 0, 0, 0, time.UTC)
	status := "completed"

	tr, err := svc.Create(context.Background(), CreateInput{
		PatientID:     1,
		TreatmentType: " extraction ",
		Date:          &date,
		Status:        &status,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), tr.ID)
	assert.Equal(t, "extraction", tr.TreatmentType)
	assert.Equal(t, date, tr.Date)
	assert.Nil(t, tr.Complications)
	assert.Nil(t, tr.NextFollowUp)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), tr.CreatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(1)
	date := time.Now()

	cases := []struct {
		name  string
		in    CreateInput
		field string
	}{
		{"missing patient", CreateInput{TreatmentType: "x", Date: &date}, "patient_id"},
		{"missing type", CreateInput{PatientID: 1, TreatmentType: "  ", Date: &date}, "treatment_type"},
		{"missing date", CreateInput{PatientID: 1, TreatmentType: "x"}, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			var ae *apperr.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			assert.Equal(t, tc.field, ae.Field)
		})
	}
}

func TestCreate_UnknownPatient(t *testing.T) {
	svc := newTestService(1)
	date := time.Now()

	_, err := svc.Create(context.Background(), CreateInput{PatientID: 99, TreatmentType: "cleaning", Date: &date})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreate_LookupFailurePropagates(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(newTestRepo(), fakePatients{err: boom})
	date := time.Now()

	_, err := svc.Create(context.Background(), CreateInput{PatientID: 1, TreatmentType: "cleaning", Date: &date})
	assert.ErrorIs(t, err, boom)
}

func TestLatest(t *testing.T) {
	svc := newTestService(1, 2)
	ctx := context.Background()

	_, ok, err := svc.Latest(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Create(ctx, CreateInput{PatientID: 1, TreatmentType: "cleaning", Date: tp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{PatientID: 1, TreatmentType: "root canal", Date: tp(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{PatientID: 2, TreatmentType: "filling", Date: tp(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)

	latest, ok, err := svc.Latest(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "root canal", latest.TreatmentType)
}

func TestListByPatient_UnknownPatient(t *testing.T) {
	svc := newTestService()

	_, err := svc.ListByPatient(context.Background(), 5)
	assert.ErrorIs(t, err, patients.ErrNotFound)
}
