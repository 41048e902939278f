package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	timesheetHandler TimesheetHandler,
	summaryHandler SummaryHandler,
	employeeHandler EmployeeHandler,
	adjustmentHandler AdjustmentHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{name}", employeeHandler.GetByName)
			r.Route("/{name}/adjustments", func(r chi.Router) {
				r.Get("/", adjustmentHandler.GetByEmployee)
				r.Put("/", adjustmentHandler.Upsert)
			})
		})

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", timesheetHandler.Register)
			r.Get("/", timesheetHandler.List)
			r.Get("/{id}", timesheetHandler.Get)
			r.Put("/{id}", timesheetHandler.Update)
			r.Delete("/{id}", timesheetHandler.Delete)
		})

		r.Route("/summaries", func(r chi.Router) {
			r.Get("/computed", summaryHandler.BuildForPeriod)
			r.Post("/", summaryHandler.Save)
			r.Get("/", summaryHandler.ListSaved)
			r.Get("/{id}", summaryHandler.GetSaved)
			r.Put("/{id}", summaryHandler.Edit)
			r.Delete("/{id}", summaryHandler.Delete)
			r.Get("/{id}/payslip", summaryHandler.DownloadPaySlip)
		})

		r.Get("/adjustments", adjustmentHandler.List)
	})
	return r
}
