package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-leads/config"
	"github.com/xavierca1/ligue-leads/internal/infra/database"
	"github.com/xavierca1/ligue-leads/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/infra/mail"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func main() {
	cfg, err := config.NewLoadedConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)
	funnelRepo := database.NewFunnelRepository(db)

	// 2. Eventos e notificações
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)

	// 3. Worker (consome eventos de lead e dispara notificações)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	createUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	updateUC := usecase.NewUpdateLeadUseCase(leadRepo)
	deleteUC := usecase.NewDeleteLeadUseCase(leadRepo, producer)
	bulkDeleteUC := usecase.NewBulkDeleteLeadsUseCase(leadRepo, producer)
	transferUC := usecase.NewTransferLeadUseCase(leadRepo, userRepo, producer)
	promoteUC := usecase.NewPromoteToFunnelUseCase(leadRepo, funnelRepo, producer)
	importUC := usecase.NewImportLeadsUseCase(leadRepo, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(
		leadRepo, listUC, createUC, updateUC, deleteUC, bulkDeleteUC, transferUC, importUC,
	)
	funnelHandler := handlers.NewFunnelHandler(promoteUC)
	userHandler := handlers.NewUserHandler(userRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.MailHost)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Api-Token", "X-User-Id", "X-User-Role", "X-Organization-Id"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIToken(cfg.LeadAPIToken))
		r.Use(middleware.Identity)

		r.Get("/leads", leadHandler.List)
		r.Post("/leads", leadHandler.Create)
		r.Post("/leads/import", leadHandler.Import)
		r.Delete("/leads", leadHandler.BulkDelete)
		r.Get("/leads/{id}", leadHandler.Get)
		r.Put("/leads/{id}", leadHandler.Update)
		r.Delete("/leads/{id}", leadHandler.Delete)

		r.Post("/funnel", funnelHandler.Promote)
		r.Get("/users", userHandler.List)
	})

	port := ":" + cfg.Port
	log.Printf("🔥 Server de Leads rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
