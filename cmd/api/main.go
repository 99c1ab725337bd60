package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enercore/backoffice/internal/infra/database"
	"github.com/enercore/backoffice/internal/infra/http/handlers"
	"github.com/enercore/backoffice/internal/infra/http/middleware"
	"github.com/enercore/backoffice/internal/infra/integration/ridalign"
	"github.com/enercore/backoffice/internal/infra/mail"
	"github.com/enercore/backoffice/internal/infra/queue"
	"github.com/enercore/backoffice/internal/infra/worker"
	"github.com/enercore/backoffice/internal/usecase"
)

func main() {
	godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := log.With().Str("app", "backoffice").Logger()
	if os.Getenv("APP_ENV") == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to rabbitmq")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	contractRepo := database.NewContractRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	messageRepo := database.NewMessageRepository(db)
	tutorRepo := database.NewTutorRepository(db)
	txRunner := database.NewTxRunner(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"), os.Getenv("MAIL_TEMPLATE_DIR"),
	)
	alignClient := ridalign.NewClient(os.Getenv("RIDALIGN_URL"), os.Getenv("RIDALIGN_API_KEY"))

	// Lifecycle worker: consumes contract events, forwards RID mandates.
	lifecycleWorker := queue.NewWorker(rabbitMQ.Ch, alignClient, contractRepo, logger)
	go lifecycleWorker.Start(queue.QueueName)

	// Renewal notice sweep.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	renewalWorker := worker.NewRenewalNoticeWorker(db, producer, logger)
	go renewalWorker.Start(ctx)

	// Usecases
	createContractUC := usecase.NewCreateContractUseCase(txRunner, contractRepo, customerRepo, producer, logger)
	updateContractUC := usecase.NewUpdateContractUseCase(contractRepo, logger)
	welcomeUC := usecase.NewWelcomeContractUseCase(contractRepo, messageRepo, mailSender, producer, logger)
	softSaveUC := usecase.NewSoftSaveContractUseCase(contractRepo, logger)
	registerTutorUC := usecase.NewRegisterTutorUseCase(txRunner, tutorRepo, mailSender, logger)

	// Handlers
	contractHandler := handlers.NewContractHandler(
		createContractUC, updateContractUC, welcomeUC, softSaveUC, contractRepo, messageRepo)
	tutorHandler := handlers.NewTutorHandler(registerTutorUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/contracts", contractHandler.Create)
	r.Get("/contracts/{id}", contractHandler.Get)
	r.Put("/contracts/{id}", contractHandler.Update)
	r.Delete("/contracts/{id}", contractHandler.Delete)
	r.Post("/contracts/{id}/welcome", contractHandler.Welcome)
	r.Post("/contracts/{id}/soft-save", contractHandler.SoftSave)
	r.Get("/contracts/{id}/messages", contractHandler.ListMessages)
	r.Post("/tutors", tutorHandler.Register)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info().Str("port", port).Msg("back office listening")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
