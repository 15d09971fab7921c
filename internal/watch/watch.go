package watch

import "sync"

// Hub fans out full-state snapshots to per-topic subscribers, standing in
// for a push-based change feed. Delivery coalesces: a subscriber that lags
// only ever sees the most recent snapshot, never a backlog of stale ones.
// Consumers must re-derive all local state from each snapshot.
type Hub struct {
	mtx  sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[string]map[*Subscription]struct{}{}}
}

type Subscription struct {
	hub   *Hub
	topic string
	ch    chan interface{}
	once  sync.Once
}

func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{hub: h, topic: topic, ch: make(chan interface{}, 1)}

	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.subs[topic] == nil {
		h.subs[topic] = map[*Subscription]struct{}{}
	}
	h.subs[topic][sub] = struct{}{}

	return sub
}

// Publish delivers snapshot to every subscriber of topic, replacing any
// undelivered previous snapshot.
func (h *Hub) Publish(topic string, snapshot interface{}) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()

	for sub := range h.subs[topic] {
		select {
		case sub.ch <- snapshot:
		default:
			// drop the stale snapshot, then retry once
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snapshot:
			default:
			}
		}
	}
}

func (s *Subscription) C() <-chan interface{} {
	return s.ch
}

func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mtx.Lock()
		defer s.hub.mtx.Unlock()
		delete(s.hub.subs[s.topic], s)
		close(s.ch)
	})
}
