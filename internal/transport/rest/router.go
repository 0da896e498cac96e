package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/nattawut/office-management/internal/auth"
	"github.com/nattawut/office-management/internal/customer"
	"github.com/nattawut/office-management/internal/employee"
	"github.com/nattawut/office-management/internal/transport/middleware"
	"github.com/nattawut/office-management/internal/transport/swagger"
	"github.com/nattawut/office-management/internal/user"
)

// RegisterAllRoutes wires the full route tree. Access policy lives here and
// nowhere else: users are admin-only, customers are sales and admin,
// employees are hr and admin, and /auth/me accepts any authenticated user.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	customerHandler *customer.Handler,
	employeeHandler *employee.Handler,
	loginLimiter *middleware.RateLimiter,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)
	rbac := auth.NewRBACAuthorization(logger)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI live outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			if loginLimiter != nil {
				sr.With(loginLimiter.Middleware).Post("/login", authHandler.Login)
			} else {
				sr.Post("/login", authHandler.Login)
			}
		})

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/auth/me", authHandler.Me)

			pr.Route("/users", func(ur chi.Router) {
				ur.Use(rbac.Require(auth.RoleAdmin))
				ur.Get("/", userHandler.ListUsers)
				ur.Post("/", userHandler.CreateUser)
				ur.Put("/{id}", userHandler.UpdateUser)
				ur.Delete("/{id}", userHandler.DeleteUser)
			})

			pr.Route("/customers", func(cr chi.Router) {
				cr.Use(rbac.Require(auth.RoleSales, auth.RoleAdmin))
				cr.Get("/", customerHandler.ListCustomers)
				cr.Post("/", customerHandler.CreateCustomer)
				cr.Put("/{id}", customerHandler.UpdateCustomer)
				cr.Delete("/{id}", customerHandler.DeleteCustomer)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Use(rbac.Require(auth.RoleHR, auth.RoleAdmin))
				er.Get("/", employeeHandler.ListEmployees)
				er.Post("/", employeeHandler.CreateEmployee)
				er.Put("/{id}", employeeHandler.UpdateEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		})
	})
}
