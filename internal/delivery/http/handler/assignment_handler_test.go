package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type mockAssignmentUsecase struct {
	createFn     func(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	listFn       func(ctx context.Context) (*dto.AssignmentListResponse, error)
	byPatientFn  func(ctx context.Context, patientID uuid.UUID) (*dto.AssignmentListResponse, error)
	deactivateFn func(ctx context.Context, assignmentID uuid.UUID) error
}

func (m *mockAssignmentUsecase) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockAssignmentUsecase) GetActiveAssignments(ctx context.Context) (*dto.AssignmentListResponse, error) {
	return m.listFn(ctx)
}

func (m *mockAssignmentUsecase) GetAssignmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AssignmentListResponse, error) {
	return m.byPatientFn(ctx, patientID)
}

func (m *mockAssignmentUsecase) DeactivateAssignment(ctx context.Context, assignmentID uuid.UUID) error {
	return m.deactivateFn(ctx, assignmentID)
}

func createAssignmentBody(patientID, doctorID uuid.UUID) string {
	return fmt.Sprintf(`{"patient_id":%q,"doctor_id":%q,"notes":"initial consult"}`, patientID, doctorID)
}

func TestCreateAssignmentSuccess(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		createFn: func(_ context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
			return &dto.AssignmentResponse{ID: uuid.New(), PatientID: req.PatientID, DoctorID: req.DoctorID}, nil
		},
	}, validator.NewValidator())

	body := createAssignmentBody(uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateAssignment(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

// A second active link for the same pair must come back as a conflict.
func TestCreateAssignmentDuplicateActivePair(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		createFn: func(_ context.Context, _ *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
			return nil, usecase.ErrAlreadyAssigned
		},
	}, validator.NewValidator())

	body := createAssignmentBody(uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateAssignment(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Error("Success = true")
	}
}

func TestCreateAssignmentPatientNotFound(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		createFn: func(_ context.Context, _ *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}, validator.NewValidator())

	body := createAssignmentBody(uuid.New(), uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateAssignment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateAssignmentMissingDoctorID(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{}, validator.NewValidator())

	body := fmt.Sprintf(`{"patient_id":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateAssignment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// A missing or foreign patient yields an empty list, not an error.
func TestGetAssignmentsByPatientEmptyForForeignPatient(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		byPatientFn: func(_ context.Context, _ uuid.UUID) (*dto.AssignmentListResponse, error) {
			return &dto.AssignmentListResponse{Assignments: []dto.AssignmentResponse{}, Total: 0}, nil
		},
	}, validator.NewValidator())

	patientID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/mappings/patient/"+patientID, nil)
	req = mux.SetURLVars(req, map[string]string{"patientId": patientID})
	rec := httptest.NewRecorder()
	h.GetAssignmentsByPatient(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	resp := decodeEnvelope(t, rec)
	data, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("remarshal data: %v", err)
	}
	var list dto.AssignmentListResponse
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if list.Total != 0 || len(list.Assignments) != 0 {
		t.Errorf("list = %+v, want empty", list)
	}
}

func TestGetActiveAssignments(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		listFn: func(_ context.Context) (*dto.AssignmentListResponse, error) {
			return &dto.AssignmentListResponse{
				Assignments: []dto.AssignmentResponse{{ID: uuid.New()}},
				Total:       1,
			}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mappings", nil)
	rec := httptest.NewRecorder()
	h.GetActiveAssignments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestDeactivateAssignmentSuccess(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		deactivateFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}, validator.NewValidator())

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/mappings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.DeactivateAssignment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestDeactivateAssignmentNotFound(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{
		deactivateFn: func(_ context.Context, _ uuid.UUID) error {
			return usecase.ErrAssignmentNotFound
		},
	}, validator.NewValidator())

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/mappings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.DeactivateAssignment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeactivateAssignmentInvalidID(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/mappings/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.DeactivateAssignment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
