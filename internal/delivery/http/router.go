package http

import (
	"net/http"

	"hospital-backend/internal/delivery/http/handler"
	"hospital-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	queueHandler       *handler.QueueHandler
	patientHandler     *handler.PatientHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	queueHandler *handler.QueueHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		queueHandler:       queueHandler,
		patientHandler:     patientHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Middleware only wraps matched routes, so each endpoint also accepts OPTIONS
	r.router.Use(r.corsMiddleware.Handle)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ClientIP)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public and token-optional endpoints; logout is rejected without a token
	public := api.NewRoute().Subrouter()
	public.Use(r.authMiddleware.OptionalAuthenticate)
	public.HandleFunc("/auth", r.authHandler.Handle).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)
	public.HandleFunc("/appointments", r.appointmentHandler.Handle).Methods(http.MethodPost, http.MethodOptions)
	public.HandleFunc("/queue", r.queueHandler.Handle).Methods(http.MethodPost, http.MethodOptions)
	public.HandleFunc("/patients", r.patientHandler.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Admin routes (protected - admin only)
	admin := api.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.Handle).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
