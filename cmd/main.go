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

	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	createStoreHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_store"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	deleteStoreHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_store"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getStoreHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_store"
	listReservationTypesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservation_types"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	listStoresHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_stores"
	updateStoreHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_store"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	businessHoursRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	reservationTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservationtype"
	staffRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/staff"
	storeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/store"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	reservationTypesService "github.com/m04kA/SMC-ReservationService/internal/service/reservationtypes"
	storesService "github.com/m04kA/SMC-ReservationService/internal/service/stores"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories, wrapped with query metrics when enabled
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, metricsCollector)
		log.Info("Database metrics collection enabled")
	}

	storeRepository := storeRepo.NewRepository(executor)
	reservationTypeRepository := reservationTypeRepo.NewRepository(executor)
	staffRepository := staffRepo.NewRepository(executor)
	businessHoursRepository := businessHoursRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)

	// Services
	storeSvc := storesService.NewService(storeRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	reservationTypeSvc := reservationTypesService.NewService(reservationTypeRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		storeRepository,
		reservationTypeRepository,
		staffRepository,
		businessHoursRepository,
		reservationRepository,
		log,
	)

	var businessMetrics createReservationUC.BusinessMetrics
	if metricsCollector != nil {
		businessMetrics = metricsCollector
	}
	createReservationUseCase := createReservationUC.NewUseCase(
		storeRepository,
		reservationTypeRepository,
		staffRepository,
		businessHoursRepository,
		reservationRepository,
		nil,
		businessMetrics,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	listReservationTypes := listReservationTypesHandler.NewHandler(reservationTypeSvc, log)
	createStore := createStoreHandler.NewHandler(storeSvc, log)
	getStore := getStoreHandler.NewHandler(storeSvc, log)
	listStores := listStoresHandler.NewHandler(storeSvc, log)
	updateStore := updateStoreHandler.NewHandler(storeSvc, log)
	deleteStore := deleteStoreHandler.NewHandler(storeSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Stores
	api.HandleFunc("/stores", createStore.Handle).Methods(http.MethodPost)
	api.HandleFunc("/stores", listStores.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}", getStore.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}", updateStore.Handle).Methods(http.MethodPut)
	api.HandleFunc("/stores/{storeId}", deleteStore.Handle).Methods(http.MethodDelete)

	// Reservation types
	api.HandleFunc("/reservation-type", listReservationTypes.Handle).Methods(http.MethodGet)

	// Reservations
	// "available" must be registered before the {reservationId} route
	api.HandleFunc("/reservations/available", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

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
