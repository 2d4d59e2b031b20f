package patients

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"dental-clinical-records/internal/platform/apperr"
	"dental-clinical-records/internal/platform/timestamp"
)

var (
	ErrNotFound   = apperr.NotFound("patient not found")
	ErrEmailTaken = apperr.Conflict("email already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name            string
	Email           *string
	Phone           *string
	LastVisit       *time.Time
	NextVisit       *time.Time
	TreatmentStatus *string
	Notes           *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Patient{}, apperr.Validation("name", "is required")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return Patient{}, apperr.Validation("name", "is too long")
	}

	email := trimOptional(in.Email)
	if email != nil {
		if !looksLikeEmail(*email) {
			return Patient{}, apperr.Validation("email", "is not a valid address")
		}
		if utf8.RuneCountInString(*email) > maxEmailLen {
			return Patient{}, apperr.Validation("email", "is too long")
		}
	}

	phone := trimOptional(in.Phone)
	if phone != nil && utf8.RuneCountInString(*phone) > maxPhoneLen {
		return Patient{}, apperr.Validation("phone", "is too long")
	}

	status := trimOptional(in.TreatmentStatus)
	if status != nil && utf8.RuneCountInString(*status) > maxTreatmentStatusLen {
		return Patient{}, apperr.Validation("treatment_status", "is too long")
	}

	p := Patient{
		Name:            name,
		Email:           email,
		Phone:           phone,
		LastVisit:       normalizePtr(in.LastVisit),
		NextVisit:       normalizePtr(in.NextVisit),
		TreatmentStatus: status,
		Notes:           trimOptional(in.Notes),
		CreatedAt:       timestamp.Normalize(s.now()),
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Patient, error) {
	if id <= 0 {
		return Patient{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

// trimOptional: nil o solo espacios => nil.
func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func normalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := timestamp.Normalize(*t)
	return &n
}

// looksLikeEmail solo exige un @ con algo a cada lado y sin espacios.
func looksLikeEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}
