package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
)

// attemptTimeout bounds every single send so one stuck SMTP or SMS
// endpoint cannot back up the per-shipment queue indefinitely.
const attemptTimeout = 10 * time.Second

type task struct {
	shp      *shipment.Shipment
	assigned *agent.Agent
}

// Dispatcher fans shipment status changes out to the sender and
// receiver. Per shipment, notifications are delivered one at a time in
// arrival order; across shipments they run concurrently. Each recipient
// and channel fails independently: one dead email address never blocks
// the SMS to the same party.
//
// Callers invoke ShipmentStatusChanged after their transaction commits;
// the dispatcher never sees uncommitted state.
type Dispatcher struct {
	store *Store
	email ports.EmailSender
	sms   ports.SMSSender
	tz    *time.Location
	log   *slog.Logger

	mu      sync.Mutex
	queues  map[string][]task
	running map[string]bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given settings store and
// channel senders. Timestamps in outgoing messages are rendered in tz.
func NewDispatcher(store *Store, email ports.EmailSender, sms ports.SMSSender, tz *time.Location, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:   store,
		email:   email,
		sms:     sms,
		tz:      tz,
		log:     log,
		queues:  make(map[string][]task),
		running: make(map[string]bool),
	}
}

// ShipmentStatusChanged enqueues a notification for the shipment's
// current state and returns immediately. The supplied context is not
// retained; delivery runs in the background on its own deadline.
func (d *Dispatcher) ShipmentStatusChanged(_ context.Context, shp *shipment.Shipment, assigned *agent.Agent) {
	if shp == nil {
		return
	}

	key := shp.ID().String()

	d.mu.Lock()
	d.queues[key] = append(d.queues[key], task{shp: shp, assigned: assigned})
	if !d.running[key] {
		d.running[key] = true
		d.wg.Add(1)
		go d.drain(key)
	}
	d.mu.Unlock()
}

// Flush blocks until every queued notification has been attempted.
func (d *Dispatcher) Flush() {
	d.wg.Wait()
}

// drain delivers the shipment's queued notifications in order, then
// retires the queue.
func (d *Dispatcher) drain(key string) {
	defer d.wg.Done()

	for {
		d.mu.Lock()
		pending := d.queues[key]
		if len(pending) == 0 {
			delete(d.queues, key)
			delete(d.running, key)
			d.mu.Unlock()
			return
		}
		next := pending[0]
		d.queues[key] = pending[1:]
		d.mu.Unlock()

		d.deliver(next)
	}
}

// deliver fans one status change out to up to four endpoints. The
// receiver is skipped on a channel when their address matches the
// sender's, so nobody is notified twice for the same change.
func (d *Dispatcher) deliver(t task) {
	cfg := d.store.Settings(context.Background())
	when := time.Now().In(d.tz)

	subject, body := buildEmail(t.shp, t.assigned, when)
	smsBody := buildSMS(t.shp, t.assigned, when)

	billNo := t.shp.BillNo()
	sender, receiver := t.shp.Sender(), t.shp.Receiver()

	d.sendEmail(cfg, billNo, sender.Email(), subject, body)
	if receiver.Email() != sender.Email() {
		d.sendEmail(cfg, billNo, receiver.Email(), subject, body)
	}

	d.sendSMS(cfg, billNo, sender.Phone(), smsBody)
	if receiver.Phone() != sender.Phone() {
		d.sendSMS(cfg, billNo, receiver.Phone(), smsBody)
	}
}

func (d *Dispatcher) sendEmail(cfg notification.Config, billNo int64, to, subject, body string) {
	ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
	defer cancel()

	err := d.email.SendEmail(ctx, cfg, to, subject, body)
	d.logOutcome("email", billNo, to, err)
}

func (d *Dispatcher) sendSMS(cfg notification.Config, billNo int64, to, body string) {
	ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
	defer cancel()

	err := d.sms.SendSMS(ctx, cfg, to, body)
	d.logOutcome("sms", billNo, to, err)
}

func (d *Dispatcher) logOutcome(channel string, billNo int64, to string, err error) {
	switch {
	case errors.Is(err, ports.ErrChannelNotConfigured):
		d.log.Info("notification skipped: not configured", "channel", channel, "bill_no", billNo, "to", to)
	case err != nil:
		d.log.Error("notification failed", "channel", channel, "bill_no", billNo, "to", to, "error", err)
	default:
		d.log.Info("notification sent", "channel", channel, "bill_no", billNo, "to", to)
	}
}

// SendDirectEmail sends a one-off email through the configured channel,
// bypassing the per-shipment queue. Used by the payment reminder job
// and the admin notification test endpoint.
func (d *Dispatcher) SendDirectEmail(ctx context.Context, to, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	return d.email.SendEmail(ctx, d.store.Settings(ctx), to, subject, body)
}

// SendDirectSMS sends a one-off SMS through the configured channel,
// bypassing the per-shipment queue.
func (d *Dispatcher) SendDirectSMS(ctx context.Context, to, body string) error {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	return d.sms.SendSMS(ctx, d.store.Settings(ctx), to, body)
}
