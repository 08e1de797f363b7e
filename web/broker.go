package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Event is one server-sent event.
type Event struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Version int             `json:"version"`
}

// Broker fans events out to SSE subscribers. Sends never block: a
// subscriber whose buffer is full misses the event. A new subscriber first
// receives the latest event of every type, so it starts from current state.
type Broker struct {
	mu      sync.Mutex
	subs    map[chan Event]struct{}
	latest  map[string]Event
	order   []string // event types in first-seen order
	version int
	buffer  int
	closed  bool
	done    chan struct{} // closed by Close
	wg      sync.WaitGroup
	log     *slog.Logger
}

// NewBroker returns a Broker whose subscribers buffer up to buffer events.
func NewBroker(buffer int, logger *slog.Logger) *Broker {
	if buffer <= 0 {
		buffer = 64
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Broker{
		subs:   make(map[chan Event]struct{}),
		latest: make(map[string]Event),
		buffer: buffer,
		done:   make(chan struct{}),
		log:    logger.With(slog.String("component", "broker")),
	}
}

// Publish encodes data and sends it to every subscriber.
func (b *Broker) Publish(typ string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("web: encode %s event: %w", typ, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.version++
	ev := Event{Type: typ, Data: raw, Version: b.version}
	if _, seen := b.latest[typ]; !seen {
		b.order = append(b.order, typ)
	}
	b.latest[typ] = ev
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.log.Warn("subscriber buffer full, dropping event", "type", typ, "version", ev.Version)
		}
	}

	return nil
}

// Subscribe registers a subscriber until ctx is done or the Broker closes;
// either way the channel is closed and the subscription released.
func (b *Broker) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, b.buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	for _, typ := range b.order {
		select {
		case ch <- b.latest[typ]:
		default:
		}
	}
	b.subs[ch] = struct{}{}
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}()

	return ch
}

// Close ends every subscription.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for ch := range b.subs {
		close(ch)
	}
	b.subs = make(map[chan Event]struct{})
}

// writeSSE writes ev as "event: <type>\nid: <version>\ndata: <json>\n\n".
func writeSSE(w io.Writer, ev Event) error {
	_, err := fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", ev.Type, ev.Version, ev.Data)

	return err
}
