package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sistema-nomina/nomina-backend-go/internal/config"
	"github.com/sistema-nomina/nomina-backend-go/internal/handler/http/middleware"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
	auditHandler AuditHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)

					r.Route("/{id}/dependents", func(r chi.Router) {
						r.Get("/", employeeHandler.ListDependents)
						r.Post("/", employeeHandler.AddDependent)
					})

					r.Route("/{id}/deductions", func(r chi.Router) {
						r.Get("/", employeeHandler.ListDeductions)
						r.Post("/", employeeHandler.AddDeduction)
					})
				})
			})

			// HR only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Put("/dependents/{dependentID}", employeeHandler.UpdateDependent)
				r.Put("/deductions/{deductionID}", employeeHandler.UpdateDeduction)
				r.Delete("/deductions/{deductionID}", employeeHandler.DeactivateDeduction)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/concepts", payrollHandler.ListConcepts)

				r.Route("/periods", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPeriods)
					r.Get("/{id}", payrollHandler.GetStatement)

					// HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHR)
						r.Post("/", payrollHandler.CreatePeriod)
						r.Delete("/{id}", payrollHandler.DeletePeriod)
						r.Post("/{id}/recalculate", payrollHandler.Recalculate)
						r.Post("/{id}/close", payrollHandler.Close)
						r.Post("/{id}/receipt", payrollHandler.SendReceipt)
					})
				})

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/recalculate-month", payrollHandler.RecalculateMonth)
				})
			})

			r.Route("/minimum-wages", func(r chi.Router) {
				r.Get("/", masterHandler.ListWages)
				r.Get("/effective", masterHandler.GetEffectiveWage)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateWage)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/audit", auditHandler.List)
			})
		})
	})
	return r
}
