package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// SubscriberQueueSize is the buffer of each subscriber channel. Events for
// a subscriber whose buffer is full are dropped.
const SubscriberQueueSize = 64

type SubscriberID int

// Bus fans committed funding events out to in-process subscribers, logs
// them and keeps prometheus counters per event type.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[domain.EventType]map[SubscriberID]chan domain.Event
	lastSubID   SubscriberID
	funcWg      sync.WaitGroup

	metrics *busMetrics
	logger  *slog.Logger
}

// NewBus creates a bus. A nil registerer disables metrics.
func NewBus(promRegistry prometheus.Registerer, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		subscribers: make(map[domain.EventType]map[SubscriberID]chan domain.Event),
		logger:      logger,
	}
	if promRegistry != nil {
		b.metrics = newBusMetrics(promRegistry)
	}
	return b
}

var _ port.EventPublisher = (*Bus)(nil)

// Subscribe returns a channel receiving events of the given type.
func (b *Bus) Subscribe(eventType domain.EventType) (SubscriberID, <-chan domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan domain.Event, SubscriberQueueSize)
	b.lastSubID++
	id := b.lastSubID
	if _, ok := b.subscribers[eventType]; !ok {
		b.subscribers[eventType] = make(map[SubscriberID]chan domain.Event)
	}
	b.subscribers[eventType][id] = ch
	return id, ch
}

// SubscribeFunc calls fn for every event of the given type on a dedicated
// goroutine until the subscription ends.
func (b *Bus) SubscribeFunc(eventType domain.EventType, fn func(domain.Event)) SubscriberID {
	id, ch := b.Subscribe(eventType)
	b.funcWg.Add(1)
	go func() {
		defer b.funcWg.Done()
		for evt := range ch {
			fn(evt)
		}
	}()
	return id
}

// Unsubscribe ends a subscription and closes its channel.
func (b *Bus) Unsubscribe(eventType domain.EventType, id SubscriberID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.subscribers[eventType]
	if !ok {
		return
	}
	if ch, ok := subs[id]; ok {
		close(ch)
		delete(subs, id)
	}
	if len(subs) == 0 {
		delete(b.subscribers, eventType)
	}
}

// Publish delivers evt to every subscriber of its type without blocking.
func (b *Bus) Publish(ctx context.Context, evt domain.Event) {
	b.logger.LogAttrs(ctx, slog.LevelDebug, "funding event",
		slog.String("id", evt.ID.String()),
		slog.String("type", string(evt.Type)),
		slog.Int64("campaign_id", evt.CampaignID),
		slog.String("account", evt.Account),
		slog.Int64("amount", evt.Amount),
	)
	if b.metrics != nil {
		b.metrics.events.WithLabelValues(string(evt.Type)).Inc()
		b.metrics.amount.WithLabelValues(string(evt.Type)).Add(float64(evt.Amount))
	}

	// Holding the read lock keeps channels open during the sends.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subscribers[evt.Type] {
		select {
		case ch <- evt:
		default:
			b.logger.Warn("subscriber queue full, dropping event",
				slog.String("type", string(evt.Type)),
				slog.Int("subscriber", int(id)))
			if b.metrics != nil {
				b.metrics.dropped.WithLabelValues(string(evt.Type)).Inc()
			}
		}
	}
}

// Stop closes every subscription and waits for SubscribeFunc handlers to
// return. The bus stays usable afterwards.
func (b *Bus) Stop() {
	b.mu.Lock()
	subs := b.subscribers
	b.subscribers = make(map[domain.EventType]map[SubscriberID]chan domain.Event)
	for _, byID := range subs {
		for _, ch := range byID {
			close(ch)
		}
	}
	b.mu.Unlock()
	b.funcWg.Wait()
}
