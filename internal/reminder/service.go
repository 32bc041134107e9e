package reminder

import (
	"context"
	"log"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"esg-index-backend/config"
	"esg-index-backend/internal/store"
)

// Service periodically scans for policies whose review date is past or
// inside the lead window and dispatches reminders through the worker pool.
type Service struct {
	cfg        *config.Config
	store      store.Store
	workerPool *WorkerPool

	// notified remembers which policies were already dispatched this
	// process lifetime, so an hourly scan does not re-send every cycle.
	notified map[int64]time.Time
}

// NewService creates the reminder service with its worker pool.
func NewService(cfg *config.Config, st store.Store) *Service {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	return &Service{
		cfg:        cfg,
		store:      st,
		workerPool: NewWorkerPool(cfg.WorkerPool.Size, st, &webpushOptions),
		notified:   make(map[int64]time.Time),
	}
}

// Run starts the periodic scan loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Reminder.Enabled {
		log.Println("Policy review reminders are disabled. Not starting.")
		return
	}
	log.Println("Starting policy review reminder service...")

	s.workerPool.Start(ctx)

	s.ScanOnce(ctx)

	timer := time.NewTimer(s.cfg.Reminder.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder service shutting down.")
			return
		case <-timer.C:
			s.ScanOnce(ctx)
			timer.Reset(s.cfg.Reminder.Interval)
		}
	}
}

// ScanOnce performs a single scan cycle and dispatches reminders for
// policies due within the lead window. Each policy is reminded at most
// once per day.
func (s *Service) ScanOnce(ctx context.Context) {
	now := time.Now()
	lead := time.Duration(s.cfg.Reminder.LeadDays) * 24 * time.Hour

	policies, err := s.store.DuePolicies(ctx, now, lead)
	if err != nil {
		log.Printf("Error scanning for due policies: %v", err)
		return
	}
	if len(policies) == 0 {
		return
	}

	dispatched := 0
	for _, policy := range policies {
		if last, ok := s.notified[policy.ID]; ok && now.Sub(last) < 24*time.Hour {
			continue
		}
		s.notified[policy.ID] = now
		s.workerPool.Dispatch(policy)
		dispatched++
	}
	if dispatched > 0 {
		log.Printf("Dispatched %d policy review reminders", dispatched)
	}
}
