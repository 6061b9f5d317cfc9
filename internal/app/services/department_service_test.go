package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/apperrors"
)

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
	nextID      int64
	blocked     map[int64]bool
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{
		departments: map[int64]*models.Department{},
		blocked:     map[int64]bool{},
	}
}

func (s *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	for _, d := range s.departments {
		if d.Code == department.Code {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	s.nextID++
	department.ID = s.nextID
	s.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := s.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *fakeDepartmentStore) List(_ context.Context, _ string) ([]*models.Department, error) {
	var out []*models.Department
	for _, d := range s.departments {
		out = append(out, d)
	}
	return out, nil
}

func (s *fakeDepartmentStore) Update(_ context.Context, department *models.Department) error {
	if _, ok := s.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	s.departments[department.ID] = department
	return nil
}

func (s *fakeDepartmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	if s.blocked[id] {
		return apperrors.ErrDepartmentHasRelations
	}
	delete(s.departments, id)
	return nil
}

func TestDepartmentCreateNormalizesCode(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	department, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{
		Name: "Computer Science",
		Code: " cs101 ",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if department.Code != "CS101" {
		t.Errorf("code = %q, want CS101", department.Code)
	}
}

func TestDepartmentCreateDuplicateCode(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	if _, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CS"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Same code in different case collides after normalization
	_, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Cognitive Science", Code: "cs"})
	if !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		t.Fatalf("error = %v, want ErrDepartmentAlreadyExists", err)
	}
}

func TestDepartmentCreateValidation(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	tests := []struct {
		name string
		req  dto.CreateDepartmentRequest
	}{
		{"empty name", dto.CreateDepartmentRequest{Name: "", Code: "CS"}},
		{"single char name", dto.CreateDepartmentRequest{Name: "C", Code: "CS"}},
		{"empty code", dto.CreateDepartmentRequest{Name: "Computer Science", Code: ""}},
		{"code with symbols", dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CS-101"}},
		{"code too long", dto.CreateDepartmentRequest{Name: "Computer Science", Code: "ABCDEFGHIJKLMNOPQRSTU"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestDepartmentDeleteBlockedByRelations(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	department, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CS"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	store.blocked[department.ID] = true

	err = svc.Delete(context.Background(), department.ID)
	if !errors.Is(err, apperrors.ErrDepartmentHasRelations) {
		t.Fatalf("error = %v, want ErrDepartmentHasRelations", err)
	}

	// The row must survive a refused delete
	if _, err := svc.GetByID(context.Background(), department.ID); err != nil {
		t.Errorf("department should still exist after refused delete: %v", err)
	}
}

func TestDepartmentUpdate(t *testing.T) {
	store := newFakeDepartmentStore()
	svc := NewDepartmentService(store)

	department, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "Computer Science", Code: "CS"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(context.Background(), department.ID, &dto.UpdateDepartmentRequest{
		Name: "Computing",
		Code: "cmp",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "Computing" || updated.Code != "CMP" {
		t.Errorf("unexpected update result: %+v", updated)
	}
}

func TestDepartmentUpdateMissing(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentStore())

	_, err := svc.Update(context.Background(), 42, &dto.UpdateDepartmentRequest{Name: "Computing", Code: "CMP"})
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Fatalf("error = %v, want ErrDepartmentNotFound", err)
	}
}
