package http

import (
	"net/http"
	"time"

	"go-medical-frontdesk/internal/delivery/http/handler"
	"go-medical-frontdesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	responseDelay      time.Duration
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	queueHandler       *handler.QueueHandler
	healthHandler      *handler.HealthHandler
	sessionHandler     *handler.SessionHandler
	auditLogHandler    *handler.AuditLogHandler
	sessionMiddleware  *middleware.SessionMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

type RouterConfig struct {
	Log                *logrus.Logger
	ResponseDelay      time.Duration
	AppointmentHandler *handler.AppointmentHandler
	DoctorHandler      *handler.DoctorHandler
	PatientHandler     *handler.PatientHandler
	QueueHandler       *handler.QueueHandler
	HealthHandler      *handler.HealthHandler
	SessionHandler     *handler.SessionHandler
	AuditLogHandler    *handler.AuditLogHandler
	SessionMiddleware  *middleware.SessionMiddleware
	CORSMiddleware     *middleware.CORSMiddleware
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		router:             mux.NewRouter(),
		log:                cfg.Log,
		responseDelay:      cfg.ResponseDelay,
		appointmentHandler: cfg.AppointmentHandler,
		doctorHandler:      cfg.DoctorHandler,
		patientHandler:     cfg.PatientHandler,
		queueHandler:       cfg.QueueHandler,
		healthHandler:      cfg.HealthHandler,
		sessionHandler:     cfg.SessionHandler,
		auditLogHandler:    cfg.AuditLogHandler,
		sessionMiddleware:  cfg.SessionMiddleware,
		corsMiddleware:     cfg.CORSMiddleware,
		loggingMiddleware:  middleware.NewLoggingMiddleware(cfg.Log),
	}
}

// Setup registers every route and returns the router wrapped in the outer middleware.
// CORS wraps the mux itself so preflight requests never reach route matching.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Latency(r.responseDelay))
	api.Use(r.sessionMiddleware.Identify)

	// Health
	api.HandleFunc("/health", r.healthHandler.GetSnapshot).Methods(http.MethodGet)
	api.HandleFunc("/health", r.healthHandler.PostHealth).Methods(http.MethodPost)

	// Session
	api.HandleFunc("/session", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/session", r.sessionHandler.GetSession).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/{action:confirm|start|complete|cancel}", r.appointmentHandler.TransitionAppointment).Methods(http.MethodPost)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Queue
	api.HandleFunc("/queue", r.queueHandler.ListQueue).Methods(http.MethodGet)
	api.HandleFunc("/queue", r.queueHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/queue", r.queueHandler.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/queue/stats", r.queueHandler.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/queue/{id}/move", r.queueHandler.MoveItem).Methods(http.MethodPost)
	api.HandleFunc("/queue/{id}/{action:start|complete|cancel}", r.queueHandler.TransitionItem).Methods(http.MethodPost)

	// Activity (admin only)
	api.Handle("/activity", middleware.RequireAdmin(http.HandlerFunc(r.auditLogHandler.ListActivity))).Methods(http.MethodGet)

	var h http.Handler = r.router
	h = middleware.SecurityHeaders(h)
	h = r.corsMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	h = middleware.Recovery(r.log)(h)
	return h
}
