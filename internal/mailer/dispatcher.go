package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Arittroskr32/CyberPiT-backend/internal/config"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
)

const (
	defaultBatchSize = 10
	defaultCooldown  = 2 * time.Second
)

// Dispatcher sends one message to many recipients in fixed-size batches.
// Sends within a batch run concurrently; batches are strictly sequential with
// a cooldown between them to respect provider rate limits. A single failed
// recipient never aborts the run.
type Dispatcher struct {
	cfg    config.Brevo
	sender Sender

	batchSize int
	cooldown  time.Duration
	sleep     func(time.Duration) // overridable in tests
}

func NewDispatcher(cfg config.Brevo, sender Sender) *Dispatcher {
	return &Dispatcher{
		cfg:       cfg,
		sender:    sender,
		batchSize: defaultBatchSize,
		cooldown:  defaultCooldown,
		sleep:     time.Sleep,
	}
}

// Dispatch renders the message once and delivers it to every recipient.
// Deduplication of recipients is the caller's responsibility.
//
// The returned outcome always reflects every recipient: Sent + Failed equals
// len(recipients) unless the call failed before any send was attempted.
func (d *Dispatcher) Dispatch(ctx context.Context, recipients []string, msg Message) Outcome {
	var outcome Outcome

	// Must fail before any network call, not mid-batch.
	if d.cfg.APIKey == "" {
		logger.Log.Error("bulk dispatch rejected", "error", ErrNotConfigured)
		outcome.Errors = append(outcome.Errors, ErrNotConfigured.Error())
		return outcome
	}

	htmlContent, err := renderNewsletter(msg)
	if err != nil {
		outcome.Errors = append(outcome.Errors, fmt.Sprintf("failed to render message: %s", err))
		return outcome
	}

	batchSize := d.batchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	batches := (len(recipients) + batchSize - 1) / batchSize
	logger.Log.Info("starting bulk dispatch", "recipients", len(recipients), "batches", batches)

	var mu sync.Mutex
	for start := 0; start < len(recipients); start += batchSize {
		end := min(start+batchSize, len(recipients))
		batch := recipients[start:end]
		logger.Log.Info("processing batch", "batch", start/batchSize+1, "of", batches, "size", len(batch))

		var wg sync.WaitGroup
		for _, recipient := range batch {
			wg.Add(1)
			go func(recipient string) {
				defer wg.Done()
				err := d.sender.Send(ctx, recipient, msg.Subject, htmlContent)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					outcome.Failed++
					outcome.Errors = append(outcome.Errors, fmt.Sprintf("Failed to send to %s: %s", recipient, err))
					return
				}
				outcome.Sent++
			}(recipient)
		}
		wg.Wait()

		// Cooldown between batches, never after the last one.
		if end < len(recipients) {
			d.sleep(d.cooldown)
		}
	}

	outcome.Success = outcome.Failed == 0
	logger.Log.Info("bulk dispatch finished", "sent", outcome.Sent, "failed", outcome.Failed)

	return outcome
}
