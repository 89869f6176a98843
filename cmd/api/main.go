package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/karyahr/ess-backend-go/internal/config"
	appHTTP "github.com/karyahr/ess-backend-go/internal/handler/http"
	"github.com/karyahr/ess-backend-go/internal/pkg/clock"
	"github.com/karyahr/ess-backend-go/internal/pkg/cron"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
	"github.com/karyahr/ess-backend-go/internal/pkg/jwt"
	"github.com/karyahr/ess-backend-go/internal/repository/postgresql"
	attendanceService "github.com/karyahr/ess-backend-go/internal/service/attendance"
	authService "github.com/karyahr/ess-backend-go/internal/service/auth"
	notificationService "github.com/karyahr/ess-backend-go/internal/service/notification"
	payrollService "github.com/karyahr/ess-backend-go/internal/service/payroll"
	permissionService "github.com/karyahr/ess-backend-go/internal/service/permission"
	userService "github.com/karyahr/ess-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	permissionConfigRepo := postgresql.NewPermissionConfigRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceConfigRepo := postgresql.NewAttendanceConfigRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emitter := notificationService.NewEmitter(notificationRepo)
	clk := clock.System()

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo)
	permissionSvc := permissionService.NewPermissionService(db, permissionRepo, permissionConfigRepo, userRepo, emitter, clk)
	permissionConfigSvc := permissionService.NewConfigService(db, permissionConfigRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, attendanceConfigRepo, userRepo, emitter, clk)
	attendanceConfigSvc := attendanceService.NewConfigService(db, attendanceConfigRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, attendanceRepo, userRepo, emitter, clk)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, attendanceConfigRepo, userRepo, clk)
	scheduler.AddJob("mark-absentees", time.Hour, attendanceJobs.MarkAbsentees)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.AllowedOrigins, appHTTP.Handlers{
		Auth:             appHTTP.NewAuthHandler(jwtService, authSvc),
		User:             appHTTP.NewUserHandler(userSvc),
		Permission:       appHTTP.NewPermissionHandler(permissionSvc),
		PermissionConfig: appHTTP.NewPermissionConfigHandler(permissionConfigSvc),
		Attendance:       appHTTP.NewAttendanceHandler(attendanceSvc),
		AttendanceConfig: appHTTP.NewAttendanceConfigHandler(attendanceConfigSvc),
		Payroll:          appHTTP.NewPayrollHandler(payrollSvc),
		Notification:     appHTTP.NewNotificationHandler(notificationSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
