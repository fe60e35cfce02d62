package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	attachReceiptHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/attach_receipt"
	createBookingHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/get_dashboard"
	getUserBookingsHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/get_user_bookings"
	getWeekGridHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/get_week_grid"
	sendWelcomeHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/send_welcome"
	setBookingStatusHandler "github.com/smartclassroom/SCB-BookingService/internal/api/handlers/set_booking_status"
	"github.com/smartclassroom/SCB-BookingService/internal/api/middleware"
	"github.com/smartclassroom/SCB-BookingService/internal/config"
	bookingRepo "github.com/smartclassroom/SCB-BookingService/internal/infra/storage/booking"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/filestore"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
	userServiceClient "github.com/smartclassroom/SCB-BookingService/internal/integrations/userservice"
	bookingsService "github.com/smartclassroom/SCB-BookingService/internal/service/bookings"
	createBookingUC "github.com/smartclassroom/SCB-BookingService/internal/usecase/create_booking"
	sendWelcomeUC "github.com/smartclassroom/SCB-BookingService/internal/usecase/send_welcome"
	setStatusUC "github.com/smartclassroom/SCB-BookingService/internal/usecase/set_status"
	weekGridUC "github.com/smartclassroom/SCB-BookingService/internal/usecase/week_grid"
	"github.com/smartclassroom/SCB-BookingService/pkg/dbmetrics"
	"github.com/smartclassroom/SCB-BookingService/pkg/logger"
	"github.com/smartclassroom/SCB-BookingService/pkg/metrics"
	"github.com/smartclassroom/SCB-BookingService/pkg/simpletxmanager"
	"github.com/smartclassroom/SCB-BookingService/pkg/txmanager"
)

func main() {
	// Секреты (SMTP_PASSWORD, FILESTORE_API_KEY и т.д.) подтягиваются из .env,
	// если файл существует. В проде переменные задаются окружением.
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SCB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	notifier, err := mailer.New(
		cfg.Mailer.Host,
		cfg.Mailer.Port,
		cfg.Mailer.From,
		cfg.Mailer.Password(),
		cfg.Mailer.TestEmailOnly,
		cfg.Mailer.Enabled,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize mailer: %v", err)
	}
	log.Info("Mailer initialized (enabled=%t, host=%s)", cfg.Mailer.Enabled, cfg.Mailer.Host)

	fileStore := filestore.NewClient(
		cfg.Filestore.CloudName,
		cfg.Filestore.APIKey(),
		cfg.Filestore.APISecret(),
		cfg.Filestore.Folder,
		cfg.Filestore.Enabled,
		time.Duration(cfg.Filestore.Timeout)*time.Second,
		log,
	)
	log.Info("Filestore client initialized (enabled=%t)", cfg.Filestore.Enabled)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		fileStore,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userClient,
		notifier,
		txMgr,
		cfg.Mailer.AdminEmails,
		log,
	)

	setStatusUseCase := setStatusUC.NewUseCase(
		bookingRepository,
		userClient,
		notifier,
		log,
	)

	weekGridUseCase := weekGridUC.NewUseCase(
		bookingRepository,
		userClient,
		log,
	)

	sendWelcomeUseCase := sendWelcomeUC.NewUseCase(
		userClient,
		notifier,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)
	attachReceipt := attachReceiptHandler.NewHandler(bookingSvc, log)
	setBookingStatus := setBookingStatusHandler.NewHandler(setStatusUseCase, log)
	getWeekGrid := getWeekGridHandler.NewHandler(weekGridUseCase, log)
	sendWelcome := sendWelcomeHandler.NewHandler(sendWelcomeUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельная сетка календаря
	api.HandleFunc("/calendar/week", getWeekGrid.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Прикрепление чека об оплате
	protected.HandleFunc("/bookings/{bookingId}/receipt", attachReceipt.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Сводка по статусам для личного кабинета
	protected.HandleFunc("/users/{userId}/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-User-Role: staff)
	// ============================================================

	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffOnly)

	// Смена статуса бронирования
	staff.HandleFunc("/bookings/{bookingId}/status", setBookingStatus.Handle).Methods(http.MethodPatch)

	// Массовая смена статусов
	staff.HandleFunc("/bookings/status", setBookingStatus.HandleBulk).Methods(http.MethodPost)

	// Приветственное письмо (вызывается identity-сервисом)
	staff.HandleFunc("/notifications/welcome", sendWelcome.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
