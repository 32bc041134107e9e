package reminder

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-index-backend/config"
	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

// mockSender is a mock implementation of the NotificationSender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

// fakeStore provides subscriptions and due policies without a database.
type fakeStore struct {
	store.Store

	subs []model.PushSubscription
	due  []model.Policy
}

func (f *fakeStore) ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error) {
	return f.subs, nil
}

func (f *fakeStore) DuePolicies(ctx context.Context, now time.Time, lead time.Duration) ([]model.Policy, error) {
	return f.due, nil
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, &fakeStore{}, &webpush.Options{})

	wp.Dispatch(model.Policy{ID: 7, Name: "Code of Conduct"})

	select {
	case job := <-wp.jobs:
		assert.Equal(t, int64(7), job.ID)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestNotifyPolicy_SendsToEverySubscriber(t *testing.T) {
	fs := &fakeStore{
		subs: []model.PushSubscription{
			{Endpoint: "https://push/1", P256DH: "k1", Auth: "a1"},
			{Endpoint: "https://push/2", P256DH: "k2", Auth: "a2"},
		},
	}

	var mu sync.Mutex
	var payloads []string
	var endpoints []string
	sender := &mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			mu.Lock()
			defer mu.Unlock()
			payloads = append(payloads, string(payload))
			endpoints = append(endpoints, sub.Endpoint)
			return okResponse(), nil
		},
	}

	wp := NewWorkerPool(1, fs, &webpush.Options{})
	wp.sender = sender

	policy := model.Policy{
		ID:             1,
		Name:           "Whistleblower Policy",
		NextReviewDate: time.Now().AddDate(0, 0, 30),
	}
	wp.notifyPolicy(context.Background(), policy)

	require.Len(t, payloads, 2)
	assert.Contains(t, payloads[0], "Policy review due: Whistleblower Policy")
	assert.ElementsMatch(t, []string{"https://push/1", "https://push/2"}, endpoints)
}

func TestNotifyPolicy_OverdueMessage(t *testing.T) {
	fs := &fakeStore{
		subs: []model.PushSubscription{{Endpoint: "https://push/1"}},
	}

	var payload string
	wp := NewWorkerPool(1, fs, &webpush.Options{})
	wp.sender = &mockSender{
		SendFunc: func(p []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			payload = string(p)
			return okResponse(), nil
		},
	}

	policy := model.Policy{
		ID:             2,
		Name:           "Data Protection Policy",
		NextReviewDate: time.Now().AddDate(0, 0, -10),
	}
	wp.notifyPolicy(context.Background(), policy)

	assert.Contains(t, payload, "Policy review overdue: Data Protection Policy")
}

func TestScanOnce_DispatchesOncePerDay(t *testing.T) {
	fs := &fakeStore{
		due: []model.Policy{
			{ID: 1, Name: "Code of Conduct", NextReviewDate: time.Now().AddDate(0, 0, 5)},
			{ID: 2, Name: "Anti-corruption Policy", NextReviewDate: time.Now().AddDate(0, 0, 40)},
		},
	}

	cfg := &config.Config{}
	cfg.Reminder.Enabled = true
	cfg.Reminder.LeadDays = 90
	cfg.WorkerPool.Size = 4

	svc := NewService(cfg, fs)

	svc.ScanOnce(context.Background())
	// A second scan inside the same day must not re-dispatch.
	svc.ScanOnce(context.Background())

	assert.Len(t, svc.workerPool.jobs, 2)
}
