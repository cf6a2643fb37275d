package mailer

import (
	"context"
	"time"

	"storefront-backend/internal/logger"
)

const (
	maxDeliveryAttempts = 3
	initialBackoff      = 1 * time.Second
	maxBackoff          = 30 * time.Second
	dequeueTimeout      = 5 * time.Second
)

// Worker drains the mail queue and delivers messages. Each message gets a
// bounded number of attempts with capped exponential backoff; a message
// that exhausts its attempts is dropped with a log line, never requeued.
type Worker struct {
	queue  *RedisQueue
	sender Sender
	log    *logger.Logger
}

// NewWorker creates a mail delivery worker
func NewWorker(queue *RedisQueue, sender Sender, log *logger.Logger) *Worker {
	return &Worker{queue: queue, sender: sender, log: log}
}

// Run consumes the queue until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Info("mail worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info("mail worker stopping")
			return ctx.Err()
		default:
		}

		msg, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.log.WithError(err).Error("failed to read mail queue")
			time.Sleep(initialBackoff)
			continue
		}
		if msg == nil {
			continue
		}

		w.deliver(ctx, *msg)
	}
}

// deliver attempts delivery with backoff. Permanent failure degrades to a
// logged no-op so the producing request is never affected.
func (w *Worker) deliver(ctx context.Context, msg Message) {
	backoff := initialBackoff
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		err := w.sender.Send(msg)
		if err == nil {
			w.log.WithFields(map[string]interface{}{
				"to":      msg.To,
				"subject": msg.Subject,
				"attempt": attempt,
			}).Info("email sent")
			return
		}

		w.log.WithError(err).WithFields(map[string]interface{}{
			"to":      msg.To,
			"attempt": attempt,
		}).Warn("email delivery failed")

		if attempt == maxDeliveryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	w.log.WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Error("email dropped after retries")
}
