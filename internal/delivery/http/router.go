package http

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/handler"
	"go-healthcare-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	assignmentHandler *handler.AssignmentHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	assignmentHandler *handler.AssignmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		assignmentHandler: assignmentHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires authentication
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patient records (scoped to the caller)
	protected.HandleFunc("/patients", r.patientHandler.GetMyPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/search", r.patientHandler.SearchPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctor directory (global)
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/search", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patient-doctor assignments
	protected.HandleFunc("/mappings", r.assignmentHandler.GetActiveAssignments).Methods(http.MethodGet)
	protected.HandleFunc("/mappings", r.assignmentHandler.CreateAssignment).Methods(http.MethodPost)
	protected.HandleFunc("/mappings/patient/{patientId}", r.assignmentHandler.GetAssignmentsByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/mappings/{id}", r.assignmentHandler.DeactivateAssignment).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
