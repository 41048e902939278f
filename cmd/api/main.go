package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/ramosacevedo/nomina-backend-go/internal/config"
	"github.com/ramosacevedo/nomina-backend-go/internal/fixtures"
	appHTTP "github.com/ramosacevedo/nomina-backend-go/internal/handler/http"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
	"github.com/ramosacevedo/nomina-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/ramosacevedo/nomina-backend-go/internal/service/adjustment"
	employeeService "github.com/ramosacevedo/nomina-backend-go/internal/service/employee"
	summaryService "github.com/ramosacevedo/nomina-backend-go/internal/service/summary"
	timesheetService "github.com/ramosacevedo/nomina-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)

	if err := employeeRepo.SeedDefaults(context.Background(), fixtures.DefaultRoster()); err != nil {
		log.Fatal("Failed to seed employee roster:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	entrySvc := timesheetService.NewEntryService(db, entryRepo, employeeRepo)
	summarySvc := summaryService.NewSummaryService(db, summaryRepo, entryRepo, employeeRepo, adjustmentRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(db, adjustmentRepo, employeeRepo)

	timesheetHandler := appHTTP.NewTimesheetHandler(entrySvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)

	router := appHTTP.NewRouter(
		timesheetHandler,
		summaryHandler,
		employeeHandler,
		adjustmentHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
