package followup

import (
	"context"
	"errors"
	"testing"
	"time"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/domain/treatments"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatients map[int64]patients.Patient

func (s stubPatients) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	p, ok := s[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

type stubTreatments struct {
	latest map[int64]treatments.Treatment
	err    error
	calls  int
}

func (s *stubTreatments) Latest(ctx context.Context, patientID int64) (treatments.Treatment, bool, error) {
	s.calls++
	if s.err != nil {
		return treatments.Treatment{}, false, s.err
	}
	t, ok := s.latest[patientID]
	return t, ok, nil
}

func strp(s string) *string { return &s }

func TestRiskAnalysis_TreatmentTypeResolution(t *testing.T) {
	lastVisit := time.Now().AddDate(0, 0, -20)
	ps := stubPatients{
		1: {ID: 1, Name: "Status and treatment", LastVisit: &lastVisit, TreatmentStatus: strp("braces")},
		2: {ID: 2, Name: "Treatment only", LastVisit: &lastVisit, TreatmentStatus: strp("   ")},
		3: {ID: 3, Name: "Nothing", LastVisit: &lastVisit},
	}
	ts := &stubTreatments{latest: map[int64]treatments.Treatment{
		1: {ID: 9, PatientID: 1, TreatmentType: "wisdom tooth extraction"},
		2: {ID: 10, PatientID: 2, TreatmentType: "root canal"},
	}}
	tg := &fakeTextGenerator{reply: "assessment"}
	svc := NewService(ps, ts, NewComposer(), NewGenerator(tg, zerolog.Nop()))

	for _, id := range []int64{1, 2, 3} {
		out, err := svc.RiskAnalysis(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "assessment", out)
	}

	require.Equal(t, 3, tg.calls())
	assert.Contains(t, tg.prompts[0], "had braces\n")
	assert.NotContains(t, tg.prompts[0], "wisdom tooth extraction")
	assert.Contains(t, tg.prompts[1], "had root canal\n")
	assert.Contains(t, tg.prompts[2], "had general checkup\n")

	// Con treatment_status no hace falta consultar tratamientos.
	assert.Equal(t, 2, ts.calls)
}

func TestRiskAnalysis_DisabledSkipsLookups(t *testing.T) {
	lastVisit := time.Now()
	ts := &stubTreatments{}
	svc := NewService(stubPatients{1: {ID: 1, LastVisit: &lastVisit}}, ts, NewComposer(), NewGenerator(nil, zerolog.Nop()))

	_, err := svc.RiskAnalysis(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNarrativeDisabled)
	assert.Equal(t, 0, ts.calls)
}

func TestRiskAnalysis_PatientNotFound(t *testing.T) {
	svc := NewService(stubPatients{}, &stubTreatments{}, NewComposer(), NewGenerator(&fakeTextGenerator{}, zerolog.Nop()))

	_, err := svc.RiskAnalysis(context.Background(), 7)
	assert.ErrorIs(t, err, patients.ErrNotFound)
	assert.False(t, IsOutcome(err))
}

func TestRiskAnalysis_TreatmentLookupError(t *testing.T) {
	lastVisit := time.Now()
	boom := errors.New("db down")
	tg := &fakeTextGenerator{}
	svc := NewService(stubPatients{1: {ID: 1, LastVisit: &lastVisit}}, &stubTreatments{err: boom}, NewComposer(), NewGenerator(tg, zerolog.Nop()))

	_, err := svc.RiskAnalysis(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, tg.calls())
}

func TestReminder_Delegates(t *testing.T) {
	lastVisit := time.Now().AddDate(0, 0, -95)
	svc := NewService(stubPatients{1: {ID: 1, Name: "D. Lee", LastVisit: &lastVisit}}, nil, NewComposer(), nil)

	rem, err := svc.Reminder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, TierHigh, rem.RiskLevel)
	assert.Equal(t, "D. Lee", rem.PatientName)

	_, err = svc.Reminder(context.Background(), 2)
	assert.ErrorIs(t, err, patients.ErrNotFound)
}
