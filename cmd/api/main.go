package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/sistema-nomina/nomina-backend-go/internal/config"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
	"github.com/sistema-nomina/nomina-backend-go/internal/fixtures"
	appHTTP "github.com/sistema-nomina/nomina-backend-go/internal/handler/http"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/database"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/email"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/jwt"
	"github.com/sistema-nomina/nomina-backend-go/internal/repository/postgresql"
	auditService "github.com/sistema-nomina/nomina-backend-go/internal/service/audit"
	employeeService "github.com/sistema-nomina/nomina-backend-go/internal/service/employee"
	"github.com/sistema-nomina/nomina-backend-go/internal/service/master"
	payrollService "github.com/sistema-nomina/nomina-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.Database)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	wageRepo := postgresql.NewWageRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	txManager := postgresql.NewTxManager(db)

	// The concept catalog is fixed; seed it before anything calculates.
	concepts, err := fixtures.SeedConcepts(context.Background(), payrollRepo)
	if err != nil {
		log.Fatal("Failed to seed concept catalog:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, deductionRepo)
	wageSvc := master.NewWageService(wageRepo)
	auditSvc := auditService.NewAuditService(auditRepo)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		payrollRepo,
		employeeRepo,
		deductionRepo,
		wageRepo,
		auditRepo,
		emailService,
		concepts,
		payroll.DefaultRules(cfg.Payroll.BonusCapMultiplier),
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	masterHandler := appHTTP.NewMasterHandler(wageSvc)
	auditHandler := appHTTP.NewAuditHandler(auditSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		employeeHandler,
		payrollHandler,
		masterHandler,
		auditHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
