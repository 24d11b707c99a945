package refill

import (
	"context"
	"log"
	"time"

	"medkit/internal/health"
	"medkit/internal/store"
)

// Alert flags a medication running low for one account.
type Alert struct {
	AccountKey string
	Medication string
	Remaining  int
}

// Worker periodically sweeps every tenant's medication list and logs a
// warning for each one at or below the refill threshold. Read-only
// against the store.
type Worker struct {
	Store     *store.Store
	Threshold int
	Interval  time.Duration
}

func (w *Worker) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, a := range w.Scan() {
				log.Printf("[REFILL] account=%s medication=%q remaining=%d\n", a.AccountKey, a.Medication, a.Remaining)
			}
		}
	}
}

// Scan visits every account and returns the low-stock alerts in account
// order.
func (w *Worker) Scan() []Alert {
	var alerts []Alert
	for _, key := range w.Store.Accounts() {
		for _, m := range w.Store.Medications(key) {
			if w.low(m) {
				alerts = append(alerts, Alert{
					AccountKey: key,
					Medication: m.Name,
					Remaining:  m.Remaining,
				})
			}
		}
	}
	return alerts
}

func (w *Worker) low(m health.Medication) bool {
	return m.Remaining <= w.Threshold
}
