package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"festivo/config"
	enquiryRepo "festivo/database/repository/enquiry"
	"festivo/services/enquiry"

	"github.com/hibiken/asynq"
)

// InitEnquiryWorker runs the async worker in background. It delivers queued
// enquiries to suppliers and periodically expires pending ones that never
// got a response.
func InitEnquiryWorker(repo enquiryRepo.EnquiryRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(enquiry.TypeEnquiryDispatch, handleDispatchTask(repo))

	go expirePendingEnquiries(repo)

	// Start async worker with retry logic
	go func() {
		log.Println("[EnquiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EnquiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EnquiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleDispatchTask(repo enquiryRepo.EnquiryRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p enquiry.DispatchPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EnquiryDispatch] invalid payload: %v", err)
			return err
		}

		// Delivery to the supplier's channel (email, dashboard push) is an
		// external collaborator; this handler is the handoff point.
		log.Printf("[EnquiryDispatch] delivering enquiry %s to supplier %s (%s)",
			p.EnquiryID, p.SupplierName, p.SupplierID)
		return nil
	}
}

// expirePendingEnquiries sweeps pending enquiries past the configured age
// into the expired state so they stop soft-gating plan mutations.
func expirePendingEnquiries(repo enquiryRepo.EnquiryRepository) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		maxAge := time.Duration(config.AppConfig.EnquiryExpiryHours) * time.Hour
		cutoff := time.Now().Add(-maxAge)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		expired, err := repo.ExpireOlderThan(ctx, cutoff)
		cancel()
		if err != nil {
			log.Printf("[EnquiryWorker] expiry sweep failed: %v", err)
		} else if expired > 0 {
			log.Printf("[EnquiryWorker] expired %d stale enquiries", expired)
		}

		<-ticker.C
	}
}
