// Package services provides infrastructure services.
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sevendesk/helpdesk/internal/shared/biztime"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils/setutil"
)

// Event names delivered on helpdesk streams.
const (
	EventComment = "comment"
	EventTyping  = "typing"
)

const defaultStreamBuffer = 64

// ErrRegistryClosed is returned by Subscribe after Shutdown.
var ErrRegistryClosed = errors.New("stream registry is closed")

// StreamScope separates user keys from ticket keys so equal IDs never collide.
type StreamScope string

const (
	ScopeUser   StreamScope = "user"
	ScopeTicket StreamScope = "ticket"
)

type StreamKey struct {
	Scope StreamScope
	ID    uint
}

// UserStreamKey addresses a user's global stream.
func UserStreamKey(userID uint) StreamKey {
	return StreamKey{Scope: ScopeUser, ID: userID}
}

// TicketStreamKey addresses the viewers of one ticket.
func TicketStreamKey(ticketID uint) StreamKey {
	return StreamKey{Scope: ScopeTicket, ID: ticketID}
}

func (k StreamKey) String() string {
	return fmt.Sprintf("%s:%d", k.Scope, k.ID)
}

// Subscription is one open stream. Its frames are drained by exactly one
// goroutine, so frames arrive in publish order.
type Subscription struct {
	ID          string
	Key         StreamKey
	UserID      uint
	ConnectedAt time.Time

	send    chan []byte
	done    chan struct{}
	closed  atomic.Bool
	onClose func()
}

// Events yields framed events ready to be written to the wire.
func (s *Subscription) Events() <-chan []byte {
	return s.send
}

// Done is closed once the subscription has been removed from the registry.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// TrySend enqueues data without blocking.
// Returns false if the subscription is closed or its buffer is full.
func (s *Subscription) TrySend(data []byte) bool {
	if s.closed.Load() {
		return false
	}

	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

// close reports whether this call performed the close. The on-close hook runs
// only on that call.
func (s *Subscription) close() bool {
	if !s.closed.CompareAndSwap(false, true) {
		return false
	}
	close(s.done)
	if s.onClose != nil {
		s.onClose()
	}
	return true
}

// StreamRegistry fans named events out to the subscriptions registered under
// a key. Delivery is best effort: no retry, no replay, and a subscriber that
// cannot keep up is dropped.
type StreamRegistry struct {
	subs map[StreamKey]map[string]*Subscription
	mu   sync.RWMutex

	bufferSize int
	shutdown   atomic.Bool

	logger logger.Interface
}

// NewStreamRegistry creates a registry whose subscriptions buffer up to
// bufferSize frames. A non-positive size selects the default.
func NewStreamRegistry(log logger.Interface, bufferSize int) *StreamRegistry {
	if bufferSize <= 0 {
		bufferSize = defaultStreamBuffer
	}
	return &StreamRegistry{
		subs:       make(map[StreamKey]map[string]*Subscription),
		bufferSize: bufferSize,
		logger:     log,
	}
}

// Subscribe registers a new subscription under key. onClose, when not nil,
// runs exactly once when the subscription leaves the registry, whatever the
// cause: Unsubscribe, a dropped slow consumer or Shutdown.
func (r *StreamRegistry) Subscribe(key StreamKey, userID uint, onClose func()) (*Subscription, error) {
	if r.shutdown.Load() {
		return nil, ErrRegistryClosed
	}

	sub := &Subscription{
		ID:          uuid.NewString(),
		Key:         key,
		UserID:      userID,
		ConnectedAt: biztime.NowUTC(),
		send:        make(chan []byte, r.bufferSize),
		done:        make(chan struct{}),
		onClose:     onClose,
	}

	r.mu.Lock()
	// Re-check under the lock so Shutdown cannot miss this subscription.
	if r.shutdown.Load() {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	set, ok := r.subs[key]
	if !ok {
		set = make(map[string]*Subscription)
		r.subs[key] = set
	}
	set[sub.ID] = sub
	r.mu.Unlock()

	r.logger.Debugw("stream subscribed",
		"key", key.String(),
		"sub_id", sub.ID,
		"user_id", userID,
	)

	return sub, nil
}

// Unsubscribe removes sub and deletes its key once no subscriber is left.
// Safe to call any number of times.
func (r *StreamRegistry) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	if set, ok := r.subs[sub.Key]; ok {
		delete(set, sub.ID)
		if len(set) == 0 {
			delete(r.subs, sub.Key)
		}
	}
	r.mu.Unlock()

	if sub.close() {
		r.logger.Debugw("stream unsubscribed",
			"key", sub.Key.String(),
			"sub_id", sub.ID,
			"user_id", sub.UserID,
			"duration", time.Since(sub.ConnectedAt).String(),
		)
	}
}

// Publish delivers event to every subscription under key and returns how many
// accepted it. No subscribers is a silent no-op.
func (r *StreamRegistry) Publish(key StreamKey, event string, payload any) int {
	frame, err := formatEvent(event, payload)
	if err != nil {
		r.logger.Errorw("failed to format stream event", "event", event, "key", key.String(), "error", err)
		return 0
	}
	return r.deliver(key, event, frame)
}

// PublishExcluding delivers event to the global stream of each distinct user
// in userIDs except excludedUserID. Zero IDs are ignored.
func (r *StreamRegistry) PublishExcluding(userIDs []uint, event string, payload any, excludedUserID uint) int {
	targets := setutil.NewIDSet(userIDs...)
	if targets.Len() == 0 {
		return 0
	}

	frame, err := formatEvent(event, payload)
	if err != nil {
		r.logger.Errorw("failed to format stream event", "event", event, "error", err)
		return 0
	}

	delivered := 0
	for _, id := range targets.Slice() {
		if id == excludedUserID {
			continue
		}
		delivered += r.deliver(UserStreamKey(id), event, frame)
	}
	return delivered
}

// PublishToTicket publishes on a ticket's viewer stream.
func (r *StreamRegistry) PublishToTicket(ticketID uint, event string, payload any) {
	r.Publish(TicketStreamKey(ticketID), event, payload)
}

// PublishToUsers publishes on the global streams of userIDs, skipping excludedUserID.
func (r *StreamRegistry) PublishToUsers(userIDs []uint, event string, payload any, excludedUserID uint) {
	r.PublishExcluding(userIDs, event, payload, excludedUserID)
}

// deliver writes frame to a snapshot of the key's subscribers. Subscribers
// whose buffer is full are dropped after the snapshot is released.
func (r *StreamRegistry) deliver(key StreamKey, event string, frame []byte) int {
	r.mu.RLock()
	set := r.subs[key]
	snapshot := make([]*Subscription, 0, len(set))
	for _, sub := range set {
		snapshot = append(snapshot, sub)
	}
	r.mu.RUnlock()

	delivered := 0
	for _, sub := range snapshot {
		if sub.TrySend(frame) {
			delivered++
			continue
		}
		r.logger.Warnw("dropping stream subscriber, channel full or closed",
			"key", key.String(),
			"sub_id", sub.ID,
			"user_id", sub.UserID,
			"event", event,
		)
		r.Unsubscribe(sub)
	}
	return delivered
}

// Count returns the number of subscriptions under key.
func (r *StreamRegistry) Count(key StreamKey) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[key])
}

// KeyCount returns the number of keys with at least one subscription.
func (r *StreamRegistry) KeyCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// Shutdown closes every subscription and rejects new ones.
// Safe to call multiple times.
func (r *StreamRegistry) Shutdown() {
	if !r.shutdown.CompareAndSwap(false, true) {
		return
	}

	r.mu.Lock()
	var all []*Subscription
	for _, set := range r.subs {
		for _, sub := range set {
			all = append(all, sub)
		}
	}
	r.subs = make(map[StreamKey]map[string]*Subscription)
	r.mu.Unlock()

	// Hooks run outside the lock; they may call Unsubscribe.
	for _, sub := range all {
		sub.close()
	}

	r.logger.Infow("stream registry shut down", "closed_subscriptions", len(all))
}

// formatEvent frames payload as a server-sent event.
func formatEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "event: %s\ndata: %s\n\n", event, data), nil
}
