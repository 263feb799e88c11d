package api

import (
	"database/sql"
	"net/http"

	"github.com/edrosario/stark/internal/metrics"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	salesHandler := &SalesHandler{DB: db}
	servicesHandler := &ServicesHandler{DB: db}
	apptsHandler := &AppointmentsHandler{DB: db}
	backupHandler := &BackupHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}
	voiceHandler := &VoiceHandler{}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: login and metrics.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /metrics", metrics.Handler())

	// Session.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Inventory.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))

	// Sales.
	mux.Handle("GET /api/sales", authMW(http.HandlerFunc(salesHandler.List)))
	mux.Handle("POST /api/sales", authMW(http.HandlerFunc(salesHandler.Create)))

	// Services by category.
	mux.Handle("GET /api/services/{category}", authMW(http.HandlerFunc(servicesHandler.List)))
	mux.Handle("POST /api/services/{category}", authMW(http.HandlerFunc(servicesHandler.Create)))

	// Appointments.
	mux.Handle("GET /api/appointments", authMW(http.HandlerFunc(apptsHandler.List)))
	mux.Handle("POST /api/appointments", authMW(http.HandlerFunc(apptsHandler.Create)))

	// Backup.
	mux.Handle("GET /api/export", authMW(http.HandlerFunc(backupHandler.Export)))
	mux.Handle("POST /api/import", authMW(http.HandlerFunc(backupHandler.Import)))

	// Dashboard counters and voice commands.
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Counts)))
	mux.Handle("POST /api/voice", authMW(http.HandlerFunc(voiceHandler.Command)))

	return mux
}
