package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opsdesk-hr/backoffice-go/internal/config"
	appHTTP "github.com/opsdesk-hr/backoffice-go/internal/handler/http"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/cron"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/jwt"
	"github.com/opsdesk-hr/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/opsdesk-hr/backoffice-go/internal/service/attendance"
	companyService "github.com/opsdesk-hr/backoffice-go/internal/service/company"
	employeeService "github.com/opsdesk-hr/backoffice-go/internal/service/employee"
	holidayService "github.com/opsdesk-hr/backoffice-go/internal/service/holiday"
	leaveService "github.com/opsdesk-hr/backoffice-go/internal/service/leave"
	payrollService "github.com/opsdesk-hr/backoffice-go/internal/service/payroll"
	scheduleService "github.com/opsdesk-hr/backoffice-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.Database.DSN())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, companyRepo)
	companySvc := companyService.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, scheduleSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, attendanceRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, leaveRepo, holidayRepo, employeeRepo, scheduleSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, leaveRepo, scheduleSvc, cfg.Sweeper.Interval, cfg.Sweeper.GraceMinutes)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
