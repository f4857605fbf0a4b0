package services

import (
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

func newTestRegistry(buffer int) *StreamRegistry {
	return NewStreamRegistry(logger.NewNopLogger(), buffer)
}

// drain returns every frame currently buffered on sub.
func drain(sub *Subscription) []string {
	var frames []string
	for {
		select {
		case f := <-sub.Events():
			frames = append(frames, string(f))
		default:
			return frames
		}
	}
}

func TestStreamKey_ScopesDoNotCollide(t *testing.T) {
	assert.NotEqual(t, UserStreamKey(42), TicketStreamKey(42))
	assert.Equal(t, "user:42", UserStreamKey(42).String())
	assert.Equal(t, "ticket:42", TicketStreamKey(42).String())
}

func TestFormatEvent(t *testing.T) {
	frame, err := formatEvent(EventTyping, map[string]any{"typing": false, "userId": 7})
	require.NoError(t, err)
	assert.Equal(t, "event: typing\ndata: {\"typing\":false,\"userId\":7}\n\n", string(frame))

	_, err = formatEvent(EventComment, make(chan int))
	assert.Error(t, err)
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	r := newTestRegistry(4)

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, r.Publish(UserStreamKey(7), EventComment, map[string]int{"ticketId": 1}))
		assert.Equal(t, 0, r.PublishExcluding([]uint{7, 9}, EventComment, nil, 0))
		assert.Equal(t, 0, r.PublishExcluding(nil, EventComment, nil, 0))
	})
	assert.Equal(t, 0, r.KeyCount())
}

func TestPublish_EverySubscriberGetsOneCopy(t *testing.T) {
	r := newTestRegistry(4)
	key := TicketStreamKey(42)

	const n = 5
	subs := make([]*Subscription, n)
	for i := range subs {
		sub, err := r.Subscribe(key, uint(i+1), nil)
		require.NoError(t, err)
		subs[i] = sub
	}
	other, err := r.Subscribe(TicketStreamKey(43), 1, nil)
	require.NoError(t, err)

	delivered := r.Publish(key, EventComment, map[string]any{"id": 1, "body": "hi"})

	assert.Equal(t, n, delivered)
	for _, sub := range subs {
		frames := drain(sub)
		require.Len(t, frames, 1)
		assert.True(t, strings.HasPrefix(frames[0], "event: comment\ndata: "))
	}
	assert.Empty(t, drain(other))
}

func TestPublish_PreservesOrderPerSubscription(t *testing.T) {
	r := newTestRegistry(8)
	key := TicketStreamKey(42)
	sub, err := r.Subscribe(key, 7, nil)
	require.NoError(t, err)

	r.Publish(key, EventComment, map[string]int{"seq": 1})
	r.Publish(key, EventTyping, map[string]int{"seq": 2})
	r.Publish(key, EventComment, map[string]int{"seq": 3})

	frames := drain(sub)
	require.Len(t, frames, 3)
	for i, f := range frames {
		data := strings.TrimSuffix(strings.SplitN(f, "data: ", 2)[1], "\n\n")
		var payload map[string]int
		require.NoError(t, json.Unmarshal([]byte(data), &payload))
		assert.Equal(t, i+1, payload["seq"])
	}
}

func TestUnsubscribe_RemovesEmptyKey(t *testing.T) {
	r := newTestRegistry(4)
	key := UserStreamKey(7)

	a, err := r.Subscribe(key, 7, nil)
	require.NoError(t, err)
	b, err := r.Subscribe(key, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Count(key))

	r.Unsubscribe(a)
	assert.Equal(t, 1, r.Count(key))
	assert.Equal(t, 1, r.Publish(key, EventComment, nil))
	assert.Empty(t, drain(a))

	r.Unsubscribe(b)
	assert.Equal(t, 0, r.Count(key))
	assert.Equal(t, 0, r.KeyCount())
	assert.Equal(t, 0, r.Publish(key, EventComment, nil))

	select {
	case <-b.Done():
	default:
		t.Fatal("Done should be closed after Unsubscribe")
	}
}

func TestUnsubscribe_HookRunsExactlyOnce(t *testing.T) {
	r := newTestRegistry(4)
	var calls atomic.Int32

	sub, err := r.Subscribe(UserStreamKey(7), 7, func() { calls.Add(1) })
	require.NoError(t, err)

	r.Unsubscribe(sub)
	r.Unsubscribe(sub)
	r.Shutdown()
	r.Unsubscribe(nil)

	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, sub.TrySend([]byte("x")))
}

func TestPublish_DropsFullSubscriber(t *testing.T) {
	r := newTestRegistry(1)
	key := TicketStreamKey(42)
	var closed atomic.Bool

	_, err := r.Subscribe(key, 7, func() { closed.Store(true) })
	require.NoError(t, err)
	fast, err := r.Subscribe(key, 9, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Publish(key, EventTyping, map[string]bool{"typing": true}))
	drain(fast)

	// slow never drained its buffer of one.
	assert.Equal(t, 1, r.Publish(key, EventTyping, map[string]bool{"typing": false}))

	assert.True(t, closed.Load())
	assert.Equal(t, 1, r.Count(key))
	assert.Len(t, drain(fast), 1)
}

func TestPublishExcluding_SkipsActor(t *testing.T) {
	r := newTestRegistry(4)

	requester, err := r.Subscribe(UserStreamKey(7), 7, nil)
	require.NoError(t, err)
	assignee, err := r.Subscribe(UserStreamKey(9), 9, nil)
	require.NoError(t, err)

	delivered := r.PublishExcluding([]uint{7, 9, 9, 0}, EventComment, map[string]uint{"ticketId": 42}, 7)

	assert.Equal(t, 1, delivered)
	assert.Empty(t, drain(requester))
	frames := drain(assignee)
	require.Len(t, frames, 1)
	assert.Equal(t, "event: comment\ndata: {\"ticketId\":42}\n\n", frames[0])
}

func TestShutdown_ClosesAllAndRejectsNew(t *testing.T) {
	r := newTestRegistry(4)
	var hooks atomic.Int32

	for i := uint(1); i <= 3; i++ {
		_, err := r.Subscribe(UserStreamKey(i), i, func() { hooks.Add(1) })
		require.NoError(t, err)
	}

	r.Shutdown()
	r.Shutdown()

	assert.Equal(t, int32(3), hooks.Load())
	assert.Equal(t, 0, r.KeyCount())

	_, err := r.Subscribe(UserStreamKey(1), 1, nil)
	assert.ErrorIs(t, err, ErrRegistryClosed)
}

func TestRegistry_ConcurrentSubscribePublishUnsubscribe(t *testing.T) {
	r := newTestRegistry(256)
	key := TicketStreamKey(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id uint) {
			defer wg.Done()
			sub, err := r.Subscribe(key, id, nil)
			if err != nil {
				return
			}
			r.Unsubscribe(sub)
		}(uint(i + 1))
		go func() {
			defer wg.Done()
			r.Publish(key, EventTyping, map[string]bool{"typing": true})
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count(key))
	assert.Equal(t, 0, r.KeyCount())
}
