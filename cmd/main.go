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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelReservationHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/delete_reservation"
	deleteShiftOverrideHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/delete_shift_override"
	getAvailableSlotsHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/get_settings"
	getShiftOverrideHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/get_shift_override"
	listReservationsHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/list_reservations"
	updateReservationHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/update_reservation_status"
	updateSettingsHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/update_settings"
	upsertShiftOverrideHandler "github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers/upsert_shift_override"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/api/middleware"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/config"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/cache"
	calendarRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/calendar"
	reservationRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/reservation"
	shiftOverrideRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/notify"
	reservationsService "github.com/sosuke1217/mobilis-ticket-sub000/internal/service/reservations"
	scheduleService "github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule"
	createReservationUC "github.com/sosuke1217/mobilis-ticket-sub000/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/sosuke1217/mobilis-ticket-sub000/internal/usecase/get_available_slots"
	updateReservationUC "github.com/sosuke1217/mobilis-ticket-sub000/internal/usecase/update_reservation"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/logger"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/metrics"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/txmanager"
)

// notifier объединяет события всех операций над записями:
// конкретные usecases и сервисы зависят только от нужного им подмножества
type notifier interface {
	ReservationCreated(ctx context.Context, res *domain.Reservation)
	ReservationUpdated(ctx context.Context, res *domain.Reservation)
	ReservationCancelled(ctx context.Context, res *domain.Reservation, reason string)
}

func main() {
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

	log.Info("Starting mobilis-ticket-sub000...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	calendarRepository := calendarRepo.NewRepository(db)
	overrideRepository := shiftOverrideRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Кеш настроек и переопределений (если включен Redis)
	var (
		calendarProvider    createReservationUC.CalendarProvider     = calendarRepository
		overrideProvider    createReservationUC.OverrideProvider     = overrideRepository
		settingsInvalidator scheduleService.SettingsCacheInvalidator = cache.NopSettingsInvalidator{}
		overrideInvalidator scheduleService.OverrideCacheInvalidator = cache.NopOverrideInvalidator{}
	)

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		ttl := time.Duration(cfg.Redis.TTLSeconds) * time.Second
		calendarCache := cache.NewCalendarCache(rdb, calendarRepository, ttl, log)
		overrideCache := cache.NewOverrideCache(rdb, overrideRepository, ttl, log)

		calendarProvider = calendarCache
		overrideProvider = overrideCache
		settingsInvalidator = calendarCache
		overrideInvalidator = overrideCache
	}

	// Публикация событий о записях (если включен RabbitMQ)
	var eventNotifier notifier = notify.Disabled{}
	if cfg.RabbitMQ.Enabled {
		publisher, err := notify.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		log.Info("Notification publisher connected (queue=%s)", cfg.RabbitMQ.Queue)

		eventNotifier = publisher
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		eventNotifier,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		calendarRepository,
		overrideRepository,
		settingsInvalidator,
		overrideInvalidator,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		calendarProvider,
		overrideProvider,
		txMgr,
		eventNotifier,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		calendarProvider,
		overrideProvider,
		txMgr,
		eventNotifier,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		calendarProvider,
		overrideProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getSettings := getSettingsHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(scheduleSvc, log)
	getShiftOverride := getShiftOverrideHandler.NewHandler(scheduleSvc, log)
	upsertShiftOverride := upsertShiftOverrideHandler.NewHandler(scheduleSvc, log)
	deleteShiftOverride := deleteShiftOverrideHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение настроек календаря
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список записей с фильтрацией
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение записи (перенос, данные клиента)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление записи
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Отмена записи с причиной
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Смена статуса записи (подтверждение, завершение, неявка)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Администрирование расписания ---
	// Обновление настроек календаря
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Переопределения смен за период
	protected.HandleFunc("/shift-overrides", getShiftOverride.HandleList).Methods(http.MethodGet)

	// Переопределение смены на дату
	protected.HandleFunc("/shift-overrides/{date}", getShiftOverride.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/shift-overrides/{date}", upsertShiftOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/shift-overrides/{date}", deleteShiftOverride.Handle).Methods(http.MethodDelete)

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
