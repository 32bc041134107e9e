// Package reminder watches governance policies and pushes review
// reminders to subscribed browsers before a policy review falls overdue.
package reminder

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real implementation using the webpush library.
type WebPushSender struct{}

func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool fans policy reminders out to the push subscribers.
type WorkerPool struct {
	size    int
	jobs    chan model.Policy
	store   store.Store
	webpush *webpush.Options
	sender  NotificationSender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, st store.Store, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan model.Policy, size),
		store:   st,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Reminder worker %d started", id)
	for {
		select {
		case policy := <-wp.jobs:
			wp.notifyPolicy(ctx, policy)
		case <-ctx.Done():
			log.Printf("Reminder worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a policy for notification.
func (wp *WorkerPool) Dispatch(policy model.Policy) {
	wp.jobs <- policy
}

// notifyPolicy sends the review reminder to every subscriber.
func (wp *WorkerPool) notifyPolicy(ctx context.Context, policy model.Policy) {
	subscriptions, err := wp.store.ListSubscriptions(ctx)
	if err != nil {
		log.Printf("Error fetching subscriptions for policy %q: %v", policy.Name, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	var message string
	if policy.ReviewStatus(time.Now()) == model.PolicyStatusExpired {
		message = fmt.Sprintf("Policy review overdue: %s (was due %s)", policy.Name, policy.NextReviewDate.Format("2006-01-02"))
	} else {
		message = fmt.Sprintf("Policy review due: %s (%s)", policy.Name, policy.NextReviewDate.Format("2006-01-02"))
	}

	log.Printf("Sending %d reminders for policy %q", len(subscriptions), policy.Name)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending reminder to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Expired subscriptions are pruned on the 410 the push service returns.
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription %s is expired. Deleting.", sub.Endpoint)
		if err := wp.store.DB().WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
