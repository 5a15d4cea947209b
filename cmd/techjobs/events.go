package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/techjobs/internal/techjobs/events"
	"github.com/spf13/cobra"
)

var eventsGroup string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the techjobs event stream",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print events from the Kafka topic as JSON lines until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()

		if len(a.cfg.Kafka.Brokers) == 0 {
			return errors.New("kafka.brokers is not configured")
		}

		consumer := events.NewConsumer(a.cfg.Kafka.Brokers, eventsGroup, a.cfg.Kafka.Topic, a.logger)
		defer consumer.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
			return enc.Encode(event)
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		consumer.Run(ctx)
		return nil
	},
}

func init() {
	eventsTailCmd.Flags().StringVar(&eventsGroup, "group", "techjobs-cli", "Kafka consumer group")
	eventsCmd.AddCommand(eventsTailCmd)
	rootCmd.AddCommand(eventsCmd)
}
