package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/config"
	"github.com/georgemunganga/tarpa-backend/internal/modules/audit"
	"github.com/georgemunganga/tarpa-backend/internal/modules/auth"
	"github.com/georgemunganga/tarpa-backend/internal/modules/catalog"
	"github.com/georgemunganga/tarpa-backend/internal/modules/message"
	"github.com/georgemunganga/tarpa-backend/internal/modules/order"
	"github.com/georgemunganga/tarpa-backend/internal/modules/payment"
	"github.com/georgemunganga/tarpa-backend/internal/modules/report"
	"github.com/georgemunganga/tarpa-backend/internal/modules/review"
	"github.com/georgemunganga/tarpa-backend/internal/modules/template"
	"github.com/georgemunganga/tarpa-backend/internal/modules/upload"
	"github.com/georgemunganga/tarpa-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Phase 1: Identity & Sessions ────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	var tokens auth.TokenBackend
	switch {
	case cfg.AuthBackend == "jwt":
		tokens = auth.NewJWTBackend(cfg.JWTSecret, sessionTTL)
	case cfg.SessionStore == "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal(err)
		}
		defer rdb.Close()
		tokens = auth.NewRedisSessions(rdb, sessionTTL)
	default:
		tokens = auth.NewPostgresSessions(db, sessionTTL)
	}

	authService := auth.NewService(userService, tokens)
	authMW := auth.NewMiddleware(authService)
	auth.NewHandler(authService).RegisterRoutes(router)

	userHandler := user.NewHandler(userService)
	router.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		r.Use(authMW.RequirePermission(user.PermViewCustomers))
		userHandler.RegisterRoutes(r)
	})

	// ── Phase 2: Catalog & Templates ────────────────────────
	catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)
	catalogHandler.RegisterPublicRoutes(router)
	router.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		r.Use(authMW.RequirePermission(user.PermManageCatalog))
		catalogHandler.RegisterAdminRoutes(r)
	})

	templateService := template.NewService(template.NewPostgresRepository(db))
	templateHandler := template.NewHandler(templateService)
	templateHandler.RegisterPublicRoutes(router)
	router.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		r.Use(authMW.RequirePermission(user.PermManageCatalog))
		templateHandler.RegisterAdminRoutes(r)
	})

	// ── Phase 3: Payments (simulated) ───────────────────────
	paymentDelay := time.Duration(cfg.PaymentDelayMs) * time.Millisecond
	paymentGateways := payment.GatewayRegistry{
		payment.MethodGCash:        payment.NewSimulatedGateway("GC", paymentDelay),
		payment.MethodMaya:         payment.NewSimulatedGateway("MY", paymentDelay),
		payment.MethodCard:         payment.NewSimulatedGateway("CD", paymentDelay),
		payment.MethodBankTransfer: payment.NewSimulatedGateway("BT", paymentDelay),
		payment.MethodCOD:          payment.NewCODGateway(),
	}
	paymentService := payment.NewService(paymentGateways)
	payment.NewHandler(paymentService).RegisterRoutes(router)

	// ── Phase 4: Audit Trail ────────────────────────────────
	auditService := audit.NewService(audit.NewPostgresRepository(db))
	router.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		r.Use(authMW.RequirePermission(user.PermViewAuditLog))
		audit.NewHandler(auditService).RegisterRoutes(r)
	})

	// ── Phase 5: Orders, Messages & Reviews ─────────────────
	orderService := order.NewService(order.NewPostgresRepository(db),
		catalogService, templateService, paymentService, auditService)
	orderHandler := order.NewHandler(orderService)
	messageService := message.NewService(message.NewPostgresRepository(db))
	messageHandler := message.NewHandler(messageService, orderService)
	reviewService := review.NewService(review.NewPostgresRepository(db), orderService, auditService)
	reviewHandler := review.NewHandler(reviewService, orderService)
	router.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		orderHandler.RegisterRoutes(r, authMW)
		messageHandler.RegisterRoutes(r)
		reviewHandler.RegisterRoutes(r)
	})

	// ── Phase 6: Uploads ────────────────────────────────────
	uploadService := upload.NewService(upload.NewPostgresRepository(db), cfg.UploadDir, cfg.MaxUploadBytes)
	uploadHandler := upload.NewHandler(uploadService, cfg.UploadDir, cfg.MaxUploadBytes)
	uploadHandler.RegisterStaticRoutes(router)
	router.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		uploadHandler.RegisterRoutes(r)
	})

	// ── Phase 7: Sales Reports ──────────────────────────────
	reportService := report.NewService(report.NewPostgresRepository(db))
	router.Group(func(r chi.Router) {
		r.Use(authMW.RequireAuth)
		r.Use(authMW.RequirePermission(user.PermGenerateReports))
		report.NewHandler(reportService).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("Tarpa API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
