package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/handler/http/middleware"
	"github.com/karyahr/ess-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth             AuthHandler
	User             UserHandler
	Permission       PermissionHandler
	PermissionConfig PermissionConfigHandler
	Attendance       AttendanceHandler
	AttendanceConfig AttendanceConfigHandler
	Payroll          PayrollHandler
	Notification     NotificationHandler
}

func NewRouter(jwtService jwt.Service, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ess-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", h.Auth.Me)
				r.With(middleware.RequireAdmin).Post("/register", h.Auth.Register)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Post("/", h.Permission.Create)
				r.With(middleware.RequirePermission(user.PermissionRequestViewAll)).
					Get("/", h.Permission.List)
				r.Get("/my", h.Permission.ListMy)
				r.Get("/{id}", h.Permission.Get)
				r.Put("/{id}", h.Permission.Update)
				r.Delete("/{id}", h.Permission.Delete)
				r.Post("/{id}/cancel", h.Permission.Cancel)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionRequestApproveStage1))
				r.Put("/approve/{id}", h.Permission.ApproveStage1)
				r.Put("/reject/{id}", h.Permission.RejectStage1)
			})

			r.Route("/hrd", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionRequestApproveStage2))
				r.Put("/approve/{id}", h.Permission.ApproveStage2)
				r.Put("/reject/{id}", h.Permission.RejectStage2)
			})

			r.Get("/quotas", h.Permission.GetQuotas)

			r.Route("/permission-configs", func(r chi.Router) {
				r.Get("/", h.PermissionConfig.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionConfigManage))
					r.Post("/", h.PermissionConfig.Create)
					r.Get("/{id}", h.PermissionConfig.Get)
					r.Put("/{id}", h.PermissionConfig.Update)
					r.Delete("/{id}", h.PermissionConfig.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/my", h.Attendance.ListMy)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/", h.Attendance.List)
			})

			r.Route("/attendance-configs", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionConfigManage))
				r.Post("/", h.AttendanceConfig.Create)
				r.Get("/", h.AttendanceConfig.List)
				r.Get("/{id}", h.AttendanceConfig.Get)
				r.Put("/{id}", h.AttendanceConfig.Update)
				r.Delete("/{id}", h.AttendanceConfig.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.ListMy)
				r.Get("/{id}", h.Payroll.Get)
				r.Get("/{id}/payslip", h.Payroll.DownloadPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollManage))
					r.Get("/", h.Payroll.List)
					r.Post("/calculate", h.Payroll.Calculate)
					r.Put("/process/{id}", h.Payroll.Process)
					r.Put("/pay/{id}", h.Payroll.MarkAsPaid)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Put("/{id}/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
			})
		})
	})

	return r
}
