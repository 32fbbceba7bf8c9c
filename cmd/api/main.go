package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/emsuite/ems-backend-go/internal/config"
	appHTTP "github.com/emsuite/ems-backend-go/internal/handler/http"
	"github.com/emsuite/ems-backend-go/internal/pkg/clock"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emsuite/ems-backend-go/internal/service/attendance"
	authService "github.com/emsuite/ems-backend-go/internal/service/auth"
	departmentService "github.com/emsuite/ems-backend-go/internal/service/department"
	employeeService "github.com/emsuite/ems-backend-go/internal/service/employee"
	leaveService "github.com/emsuite/ems-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	clk := clock.New()
	if cfg.App.Timezone != "" {
		loc, err := time.LoadLocation(cfg.App.Timezone)
		if err != nil {
			log.Fatal("Invalid APP_TIMEZONE: ", err)
		}
		clk = clock.NewInLocation(loc)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		departmentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
