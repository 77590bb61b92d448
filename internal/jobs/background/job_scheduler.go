package background

import (
	"context"
	"log"
	"sync"
	"time"

	"hotelops/internal/jobs"
	"hotelops/internal/repositories"
	"hotelops/internal/services"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobScheduler manages the recurring background jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	hotelRepo repositories.HotelRepository
	kotSvc    services.KotService
	alertSvc  *jobs.LowStockAlertService
	jobHandle map[string]gocron.Job
	mu        sync.RWMutex
}

func NewJobScheduler(hotelRepo repositories.HotelRepository, kotSvc services.KotService,
	alertSvc *jobs.LowStockAlertService) *JobScheduler {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		hotelRepo: hotelRepo,
		kotSvc:    kotSvc,
		alertSvc:  alertSvc,
		jobHandle: make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	// KOT order status sweep - every minute
	sweepJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(js.sweepKotOrders, context.Background()),
		gocron.WithName("kot-status-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create KOT sweep job: %v", err)
	} else {
		js.jobHandle["kot-sweep"] = sweepJob
	}

	// Low stock alerts - every 15 minutes
	alertsJob, err := js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.processLowStockAlerts, context.Background()),
		gocron.WithName("low-stock-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create low stock alerts job: %v", err)
	} else {
		js.jobHandle["low-stock-alerts"] = alertsJob
	}

	log.Printf("Registered %d background jobs", len(js.jobHandle))
}

// sweepKotOrders recomputes order statuses for every active hotel, healing
// any missed recomputation after an item update.
func (js *JobScheduler) sweepKotOrders(ctx context.Context) error {
	return js.forEachHotel(ctx, func(hotelID uuid.UUID) {
		if err := js.kotSvc.SweepOpenOrders(ctx, hotelID); err != nil {
			log.Printf("KOT sweep failed for hotel %s: %v", hotelID.String(), err)
		}
	})
}

// processLowStockAlerts raises reorder notifications for every active hotel.
func (js *JobScheduler) processLowStockAlerts(ctx context.Context) error {
	return js.forEachHotel(ctx, func(hotelID uuid.UUID) {
		if err := js.alertSvc.ProcessHotel(ctx, hotelID); err != nil {
			log.Printf("Low stock alert run failed for hotel %s: %v", hotelID.String(), err)
		}
	})
}

// forEachHotel fans the work out over active hotels with bounded concurrency.
func (js *JobScheduler) forEachHotel(ctx context.Context, work func(hotelID uuid.UUID)) error {
	hotels, err := js.hotelRepo.ListActive(ctx, 1000, 0)
	if err != nil {
		log.Printf("Failed to list hotels for background job: %v", err)
		return err
	}

	semaphore := make(chan struct{}, 5)
	var wg sync.WaitGroup
	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotelID uuid.UUID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			work(hotelID)
		}(hotel.ID)
	}
	wg.Wait()
	return nil
}
