package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// -- Mock usecase --

type mockPatientUsecase struct {
	createFn func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	listFn   func(ctx context.Context) (*dto.PatientListResponse, error)
	searchFn func(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error)
	updateFn func(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockPatientUsecase) GetMyPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	return m.listFn(ctx)
}

func (m *mockPatientUsecase) SearchPatients(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error) {
	return m.searchFn(ctx, filter)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func validCreatePatientBody() string {
	return `{
		"first_name": "Jane",
		"last_name": "Doe",
		"date_of_birth": "1990-01-01",
		"gender": "F",
		"phone_number": "1234567890",
		"address": "1 Main St",
		"emergency_contact": "John Doe",
		"emergency_phone": "0987654321"
	}`
}

func TestCreatePatientSuccess(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		createFn: func(_ context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{ID: uuid.New(), FirstName: req.FirstName, LastName: req.LastName}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(validCreatePatientBody()))
	rec := httptest.NewRecorder()
	h.CreatePatient(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Error("Success = false")
	}
}

func TestCreatePatientValidationFailure(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{}, validator.NewValidator())

	// Gender outside the enum
	body := strings.Replace(validCreatePatientBody(), `"F"`, `"X"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePatient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreatePatientInvalidDate(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		createFn: func(_ context.Context, _ *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return nil, usecase.ErrInvalidDateFormat
		},
	}, validator.NewValidator())

	body := strings.Replace(validCreatePatientBody(), "1990-01-01", "01/01/1990", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreatePatient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// A patient owned by another user maps to 404, never 403.
func TestGetPatientOwnershipHiddenAsNotFound(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		getFn: func(_ context.Context, _ uuid.UUID) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.GetPatient(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetPatientInvalidID(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.GetPatient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetMyPatients(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		listFn: func(_ context.Context) (*dto.PatientListResponse, error) {
			return &dto.PatientListResponse{
				Patients: []dto.PatientResponse{{ID: uuid.New(), FirstName: "Jane"}},
				Total:    1,
			}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	h.GetMyPatients(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSearchPatientsPassesFilter(t *testing.T) {
	var captured *entity.PatientFilter
	h := NewPatientHandler(&mockPatientUsecase{
		searchFn: func(_ context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error) {
			captured = filter
			return &dto.PatientListResponse{Patients: []dto.PatientResponse{}}, nil
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/search?name=doe&gender=F", nil)
	rec := httptest.NewRecorder()
	h.SearchPatients(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if captured == nil || captured.Name != "doe" || captured.Gender != "F" {
		t.Errorf("filter = %+v", captured)
	}
}

func TestUpdatePatientNotFound(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		updateFn: func(_ context.Context, _ uuid.UUID, _ *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/patients/"+uuid.NewString(), strings.NewReader(`{"first_name":"Janet"}`))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.UpdatePatient(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeletePatientSuccess(t *testing.T) {
	h := NewPatientHandler(&mockPatientUsecase{
		deleteFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.DeletePatient(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
