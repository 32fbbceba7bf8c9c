package http

import (
	"log/slog"
	"os"

	"github.com/emsuite/ems-backend-go/internal/handler/http/middleware"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppName        string
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/employee/me", employeeHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Get("/me/today", attendanceHandler.GetToday)
				r.Get("/me", attendanceHandler.GetMyHistory)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.GetMyLeaves)
				r.Get("/{id}", leaveHandler.GetMyLeaveByID)
				r.Patch("/{id}/cancel", leaveHandler.Cancel)
			})

			r.Get("/departments", departmentHandler.List)

			// Admin and HR only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/today", attendanceHandler.TodayPresence)
					r.Post("/", attendanceHandler.UpsertToday)
					r.Patch("/{id}", attendanceHandler.UpdateRecordTimes)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", leaveHandler.ListLeaves)
					r.Patch("/{id}/approve", leaveHandler.Approve)
					r.Patch("/{id}/reject", leaveHandler.Reject)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Post("/departments", departmentHandler.Create)
			})
		})
	})
	return r
}
