package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const queueKey = "mailer:queue"

// RedisQueue is the shared mail queue between the API process and the
// delivery worker. Enqueue is a single LPUSH; Dequeue blocks on BRPOP.
type RedisQueue struct {
	client *redis.Client
}

// NewRedisQueue wraps an existing Redis client
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

// Enqueue pushes a message onto the queue
func (q *RedisQueue) Enqueue(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail message: %w", err)
	}
	if err := q.client.LPush(ctx, queueKey, data).Err(); err != nil {
		return fmt.Errorf("enqueue mail message: %w", err)
	}
	return nil
}

// Dequeue blocks up to timeout for the next message. It returns
// (nil, nil) when the timeout elapses with an empty queue.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Message, error) {
	res, err := q.client.BRPop(ctx, timeout, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue mail message: %w", err)
	}
	// BRPop returns [key, value]
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected brpop reply of length %d", len(res))
	}

	var msg Message
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return nil, fmt.Errorf("unmarshal mail message: %w", err)
	}
	return &msg, nil
}

// SyncEnqueuer delivers messages inline through a Sender. It backs
// deployments without Redis (tests, offline development) where no worker
// process exists.
type SyncEnqueuer struct {
	sender Sender
}

// NewSyncEnqueuer creates an enqueuer that sends inline
func NewSyncEnqueuer(sender Sender) *SyncEnqueuer {
	return &SyncEnqueuer{sender: sender}
}

// Enqueue sends the message immediately
func (e *SyncEnqueuer) Enqueue(_ context.Context, msg Message) error {
	return e.sender.Send(msg)
}
