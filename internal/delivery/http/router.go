package http

import (
	"net/http"

	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/handler"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	appointmentHandler   *handler.AppointmentHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	treatmentPlanHandler *handler.TreatmentPlanHandler
	progressHandler      *handler.ProgressHandler
	analyticsHandler     *handler.AnalyticsHandler
	feedbackHandler      *handler.FeedbackHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	treatmentPlanHandler *handler.TreatmentPlanHandler,
	progressHandler *handler.ProgressHandler,
	analyticsHandler *handler.AnalyticsHandler,
	feedbackHandler *handler.FeedbackHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		appointmentHandler:   appointmentHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		treatmentPlanHandler: treatmentPlanHandler,
		progressHandler:      progressHandler,
		analyticsHandler:     analyticsHandler,
		feedbackHandler:      feedbackHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor directory (public)
	api.HandleFunc("/doctors", r.doctorHandler.Directory).Methods(http.MethodGet)
	api.HandleFunc("/doctors/recommendations", r.doctorHandler.Recommendations).Methods(http.MethodGet)

	// Doctor self-service (doctor only); registered before /doctors/{id} so
	// mux does not swallow "me" as an ID
	doctorMe := api.PathPrefix("/doctors/me").Subrouter()
	doctorMe.Use(r.authMiddleware.Authenticate)
	doctorMe.Use(middleware.RequireDoctor)
	doctorMe.HandleFunc("", r.doctorHandler.Me).Methods(http.MethodGet)
	doctorMe.HandleFunc("", r.doctorHandler.UpdateMe).Methods(http.MethodPut)
	doctorMe.HandleFunc("/patients", r.patientHandler.Roster).Methods(http.MethodGet)

	api.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)

	// Patient self-service (patient only)
	patientMe := api.PathPrefix("/patients/me").Subrouter()
	patientMe.Use(r.authMiddleware.Authenticate)
	patientMe.Use(middleware.RequirePatient)
	patientMe.HandleFunc("", r.patientHandler.Me).Methods(http.MethodGet)
	patientMe.HandleFunc("", r.patientHandler.UpdateMe).Methods(http.MethodPut)

	// Appointments (participants)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/reschedule", r.appointmentHandler.Reschedule).Methods(http.MethodPost)

	// Booking (patient only)
	booking := api.PathPrefix("/appointments").Subrouter()
	booking.Use(r.authMiddleware.Authenticate)
	booking.Use(middleware.RequirePatient)
	booking.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)

	// Treatment plans (participants read, doctors write)
	plans := api.PathPrefix("/treatment-plans").Subrouter()
	plans.Use(r.authMiddleware.Authenticate)
	plans.HandleFunc("", r.treatmentPlanHandler.List).Methods(http.MethodGet)
	plans.HandleFunc("/{id}", r.treatmentPlanHandler.Get).Methods(http.MethodGet)

	planWrites := api.PathPrefix("/treatment-plans").Subrouter()
	planWrites.Use(r.authMiddleware.Authenticate)
	planWrites.Use(middleware.RequireDoctor)
	planWrites.HandleFunc("", r.treatmentPlanHandler.Create).Methods(http.MethodPost)
	planWrites.HandleFunc("/{id}", r.treatmentPlanHandler.Update).Methods(http.MethodPut)
	planWrites.HandleFunc("/{id}/status", r.treatmentPlanHandler.UpdateStatus).Methods(http.MethodPatch)
	planWrites.HandleFunc("/{id}", r.treatmentPlanHandler.Delete).Methods(http.MethodDelete)

	// Progress tracking; patients write, care staff read with patient_id
	progress := api.PathPrefix("/progress").Subrouter()
	progress.Use(r.authMiddleware.Authenticate)
	progress.HandleFunc("/symptoms", r.progressHandler.ListSymptoms).Methods(http.MethodGet)
	progress.HandleFunc("/moods", r.progressHandler.ListMoods).Methods(http.MethodGet)
	progress.HandleFunc("/activities", r.progressHandler.ListActivities).Methods(http.MethodGet)
	progress.HandleFunc("/summary", r.progressHandler.Summary).Methods(http.MethodGet)

	progressWrites := api.PathPrefix("/progress").Subrouter()
	progressWrites.Use(r.authMiddleware.Authenticate)
	progressWrites.Use(middleware.RequirePatient)
	progressWrites.HandleFunc("/symptoms", r.progressHandler.AddSymptom).Methods(http.MethodPost)
	progressWrites.HandleFunc("/moods", r.progressHandler.AddMood).Methods(http.MethodPost)
	progressWrites.HandleFunc("/activities", r.progressHandler.AddActivity).Methods(http.MethodPost)

	// Analytics (patient only)
	analytics := api.PathPrefix("/analytics").Subrouter()
	analytics.Use(r.authMiddleware.Authenticate)
	analytics.Use(middleware.RequirePatient)
	analytics.HandleFunc("/dashboard", r.analyticsHandler.Dashboard).Methods(http.MethodGet)
	analytics.HandleFunc("/trends", r.analyticsHandler.Trends).Methods(http.MethodGet)

	// Feedback (anonymous submissions allowed, aggregates public)
	feedback := api.PathPrefix("/feedback").Subrouter()
	feedback.Use(r.authMiddleware.OptionalAuthenticate)
	feedback.HandleFunc("", r.feedbackHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/feedback", r.feedbackHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/feedback/stats", r.feedbackHandler.Stats).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
