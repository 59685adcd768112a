package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	createAppointmentHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/create_appointment"
	createRuleHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/create_unavailability_rule"
	deleteHoursHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/delete_business_hours"
	deleteRuleHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/delete_unavailability_rule"
	getAppointmentHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/get_available_slots"
	getHoursHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/get_business_hours"
	getCompanyAppointmentsHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/get_company_appointments"
	getCompanyConfigHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/get_company_config"
	listRulesHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/list_unavailability_rules"
	transitionAppointmentHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/transition_appointment"
	updateHoursHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/update_business_hours"
	updateCompanyConfigHandler "github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers/update_company_config"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/config"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/infra/cache"
	slotcache "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/cache/slots"
	appointmentRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/appointment"
	configRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/config"
	scheduleRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/schedule"
	ruleRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/unavailability"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/clinicservice"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/notifier"
	appointmentsService "github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments"
	configService "github.com/LeandroKolesny/Aura-System-sub000/internal/service/config"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/conflicts"
	schedulesService "github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules"
	unavailabilityService "github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability"
	createAppointmentUC "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/get_available_slots"
	transitionAppointmentUC "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/transition_appointment"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/dbmetrics"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/logger"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/metrics"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/txmanager"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// slotCache общий интерфейс Redis-кэша и заглушки
type slotCache interface {
	Get(ctx context.Context, key slotcache.Key) ([]domain.Slot, bool, error)
	Set(ctx context.Context, key slotcache.Key, slots []domain.Slot) error
	Invalidate(ctx context.Context, companyID int64, dates ...types.Date) error
	InvalidateCompany(ctx context.Context, companyID int64) error
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func runServer(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	location, err := cfg.Scheduling.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting scheduling service...")
	log.Info("Configuration loaded from %s (timezone=%s)", configPath, location)

	// Метрики (nil, если выключены: все методы безопасны для nil)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithRetryObserver(metricsCollector))

	// Кэш слотов: без Redis каждый запрос считает слоты заново
	var slots slotCache = slotcache.Noop{}
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		slots = slotcache.New(redisClient, time.Duration(cfg.Scheduling.SlotCacheTTL)*time.Second)
		log.Info("Slot cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Scheduling.SlotCacheTTL)
	} else {
		log.Warn("Redis is not configured, slot cache disabled")
	}

	// Интеграции
	clinicClient := clinicservice.NewClient(
		cfg.ClinicService.URL,
		time.Duration(cfg.ClinicService.Timeout)*time.Second,
		log,
	)
	notifications := notifier.New(
		notifier.Config{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic},
		location,
		metricsCollector,
		log,
	)
	log.Info("Integrations initialized (ClinicService=%s, kafka_enabled=%t)", cfg.ClinicService.URL, cfg.Kafka.Enabled())

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	configRepository := configRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	ruleRepository := ruleRepo.NewRepository(wrappedDB)

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, location, log)
	configSvc := configService.NewService(
		configRepository,
		slots,
		configService.Defaults{
			SlotIntervalMinutes: cfg.Scheduling.DefaultSlotInterval,
			RoomCount:           cfg.Scheduling.DefaultRoomCount,
		},
		log,
	)
	scheduleSvc := schedulesService.NewService(scheduleRepository, txMgr, slots, log)
	ruleSvc := unavailabilityService.NewService(ruleRepository, slots, log)
	detector := conflicts.NewDetector(appointmentRepository, location)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		configSvc,
		scheduleSvc,
		ruleSvc,
		clinicClient,
		slots,
		metricsCollector,
		location,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		configSvc,
		scheduleSvc,
		ruleSvc,
		detector,
		clinicClient,
		slots,
		notifications,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	transitionAppointmentUseCase := transitionAppointmentUC.NewUseCase(
		appointmentRepository,
		configSvc,
		detector,
		clinicClient,
		slots,
		notifications,
		metricsCollector,
		txMgr,
		location,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(transitionAppointmentUseCase, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getCompanyAppointments := getCompanyAppointmentsHandler.NewHandler(appointmentSvc, log)
	getCompanyConfig := getCompanyConfigHandler.NewHandler(configSvc, log)
	updateCompanyConfig := updateCompanyConfigHandler.NewHandler(configSvc, log)
	getHours := getHoursHandler.NewHandler(scheduleSvc, log)
	updateHours := updateHoursHandler.NewHandler(scheduleSvc, log)
	deleteHours := deleteHoursHandler.NewHandler(scheduleSvc, log)
	listRules := listRulesHandler.NewHandler(ruleSvc, log)
	createRule := createRuleHandler.NewHandler(ruleSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(ruleSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/companies/{companyId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID, X-User-Role, X-Company-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", transitionAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/companies/{companyId}/appointments", getCompanyAppointments.Handle).Methods(http.MethodGet)

	// --- Настройки компании ---
	protected.HandleFunc("/companies/{companyId}/config", getCompanyConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/config", updateCompanyConfig.Handle).Methods(http.MethodPut)

	// --- Рабочие часы ---
	protected.HandleFunc("/companies/{companyId}/business-hours", getHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/business-hours", updateHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/companies/{companyId}/professionals/{professionalId}/business-hours",
		getHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/professionals/{professionalId}/business-hours",
		updateHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/companies/{companyId}/professionals/{professionalId}/business-hours",
		deleteHours.Handle).Methods(http.MethodDelete)

	// --- Периоды недоступности ---
	protected.HandleFunc("/companies/{companyId}/unavailability-rules", listRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/unavailability-rules", createRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}/unavailability-rules/{ruleId}",
		deleteRule.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
	}

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уведомлений, начатых до остановки
	if err := notifications.Close(); err != nil {
		log.Error("Failed to close notifier: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
