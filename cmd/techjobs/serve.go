package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/techjobs/internal/techjobs/cache"
	"github.com/gartstein/techjobs/internal/techjobs/controller"
	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/gartstein/techjobs/internal/techjobs/handlers"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web pages and JSON API over HTTP, and gRPC health checks",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()
	logger := a.logger

	repo, err := a.connectDB()
	if err != nil {
		return err
	}
	defer repo.Close()

	producer, closeProducer := newEventProducer(a)
	defer closeProducer()

	jobCache := cache.NewRedis(a.cfg.Cache(), logger)
	defer jobCache.Close()

	services := handlers.Services{
		Jobs:      controller.NewJobService(repo, repo, repo, producer, jobCache, logger),
		Employers: controller.NewEmployerService(repo, producer, jobCache, logger),
		Skills:    controller.NewSkillService(repo, producer, jobCache, logger),
	}

	if !a.cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handlers.NewRouter(services, a.cfg.Auth.JWTSecret, logger)
	if err != nil {
		return err
	}
	if a.cfg.Auth.JWTSecret == "" {
		logger.Warn("auth.jwt_secret is empty, API writes are unauthenticated")
	}

	server := handlers.NewServer(a.cfg.Server.GRPCPort, a.cfg.Server.HTTPPort, logger)
	server.RegisterHTTPHandler(router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	server.Stop()
	if err := <-errCh; err != nil {
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("Servers stopped properly")
	return nil
}

// newEventProducer publishes to Kafka when brokers are configured and drops
// events otherwise.
func newEventProducer(a *app) (controller.EventProducer, func()) {
	if len(a.cfg.Kafka.Brokers) == 0 {
		a.logger.Info("No Kafka brokers configured, events are discarded")
		return events.Discard{}, func() {}
	}
	producer, err := events.NewProducer(a.cfg.Kafka.Brokers, a.logger, a.cfg.Kafka.Topic)
	if err != nil {
		a.logger.Warn("Kafka unavailable, events are discarded", zap.Error(err))
		return events.Discard{}, func() {}
	}
	return producer, producer.Close
}
