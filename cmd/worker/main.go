package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"echoaid-server/internal/clients/twilio"
	"echoaid-server/internal/config"
	"echoaid-server/internal/jobs"
	"echoaid-server/internal/jobs/workers"
	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting callback worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	dialer := twilio.New(
		cfg.Telephony.AccountSID,
		cfg.Telephony.AuthToken,
		cfg.Telephony.CallerNumber,
		cfg.Telephony.VoiceWebhook,
		logger,
	)

	callbackWorker := workers.NewCallbackWorker(&dataStore, dialer, logger)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Addr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				jobs.QueueHigh:    7,
				jobs.QueueDefault: 3,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCallbackExecution, callbackWorker.ProcessCallbackTask)
	mux.HandleFunc(jobs.TypeMissedCallCallback, callbackWorker.ProcessMissedCallTask)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}
