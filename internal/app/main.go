package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Egor213/PgDash/internal/broker"
	kafkabroker "github.com/Egor213/PgDash/internal/broker/kafka"
	"github.com/Egor213/PgDash/internal/config"
	httpv1 "github.com/Egor213/PgDash/internal/controller/http/v1"
	"github.com/Egor213/PgDash/internal/metrics"
	"github.com/Egor213/PgDash/internal/repo"
	"github.com/Egor213/PgDash/internal/service"
	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	"github.com/Egor213/PgDash/pkg/httpserver"
	"github.com/Egor213/PgDash/pkg/logger"
	"github.com/Egor213/PgDash/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Monitored servers
	servers := postgres.NewRegistry(
		serverInfos(cfg.Servers),
		postgres.MaxPoolSize(cfg.Dashboard.ServerPoolSize),
		postgres.ConnAttempts(1),
		postgres.ApplicationName(cfg.App.Name),
		postgres.HealthCheckPeriod(time.Minute),
	)
	defer servers.Close()
	log.Infof("Registered %d servers", len(cfg.Servers))

	// Repos
	repositories := repo.NewRepositories(pg, servers)

	// Broker
	var producer broker.Producer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		log.WithField("topic", cfg.Kafka.Topic).Info("Long running query alerts are published to Kafka")
		kp, err := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		producer = kp
	}

	// Services
	counters := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       counters,
		BrokerProducer: producer,
		Servers:        servers,
		Settings: service.Settings{
			LogPageSize:      cfg.Dashboard.LogPageSize,
			DefaultThreshold: cfg.Dashboard.LongRunningThreshold,
		},
	}
	services := service.NewServices(deps)

	// HTTP server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.HideBanner = true
	handler.Use(logger.RequestLogger())
	handler.Use(metrics.Middleware(cfg.App.Name))
	if err := httpv1.ConfigureRouter(handler, services, counters); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}

func serverInfos(servers []config.Server) []postgres.ServerInfo {
	infos := make([]postgres.ServerInfo, 0, len(servers))
	for _, s := range servers {
		infos = append(infos, postgres.ServerInfo{ID: s.ID, Name: s.Name, URL: s.URL})
	}
	return infos
}
