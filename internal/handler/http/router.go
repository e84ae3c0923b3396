package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/config"
	"github.com/opsdesk-hr/backoffice-go/internal/handler/http/middleware"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Holiday    HolidayHandler
	Schedule   ScheduleHandler
	Employee   EmployeeHandler
	Payroll    PayrollHandler
	Company    CompanyHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backoffice"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/company", func(r chi.Router) {
				r.Get("/", h.Company.Get)
				r.Put("/", h.Company.Update)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Get("/schedule", h.Schedule.Resolve)
					r.Put("/attendance", h.Attendance.ManualUpdate)
					r.Get("/payroll", h.Payroll.Get)
					r.Get("/payroll/ledger", h.Payroll.Compute)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.ListMine)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/", h.Leave.List)
				r.Get("/my", h.Leave.ListMine)
				r.Patch("/{leaveID}/decision", h.Leave.Decide)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Create)
				r.Put("/{holidayID}", h.Holiday.Update)
				r.Delete("/{holidayID}", h.Holiday.Delete)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Post("/", h.Schedule.Create)
				r.Get("/{scheduleID}", h.Schedule.Get)
				r.Delete("/{scheduleID}", h.Schedule.Deactivate)
			})

			r.Post("/payrolls/generate", h.Payroll.Generate)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
