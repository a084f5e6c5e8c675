package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillstack/blog-api/internal/core/domain"
	"github.com/quillstack/blog-api/internal/core/ports"
)

// collectorService records processed events for inspection.
type collectorService struct {
	mu     sync.Mutex
	events []ports.ActivityEvent
}

func (s *collectorService) Process(_ context.Context, event ports.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *collectorService) Recent(_ context.Context, _ string, _ int) ([]domain.Activity, error) {
	return nil, nil
}

func (s *collectorService) snapshot() []ports.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityEvent(nil), s.events...)
}

func waitFor(t *testing.T, deadline time.Duration, cond func() bool) {
	t.Helper()
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", deadline)
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &collectorService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	const total = 20
	for i := 0; i < total; i++ {
		d.Record(ports.ActivityEvent{
			Action:    domain.ActivityCreated,
			PostID:    fmt.Sprintf("post-%d", i),
			ActorID:   "user-1",
			Timestamp: time.Now().UTC(),
		})
	}

	waitFor(t, 2*time.Second, func() bool {
		return len(svc.snapshot()) == total
	})
}

func TestDispatcher_PerPostOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &collectorService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	// Interleave events for two posts; each post's sequence must survive
	// intact because all its events land on the same worker.
	actions := []domain.ActivityAction{domain.ActivityCreated, domain.ActivityEdited, domain.ActivityDeleted}
	for _, action := range actions {
		for _, postID := range []string{"post-a", "post-b"} {
			d.Record(ports.ActivityEvent{Action: action, PostID: postID, ActorID: "user-1"})
		}
	}

	waitFor(t, 2*time.Second, func() bool {
		return len(svc.snapshot()) == len(actions)*2
	})

	for _, postID := range []string{"post-a", "post-b"} {
		var seen []domain.ActivityAction
		for _, event := range svc.snapshot() {
			if event.PostID == postID {
				seen = append(seen, event.Action)
			}
		}
		if len(seen) != len(actions) {
			t.Fatalf("post %s: expected %d events, got %d", postID, len(actions), len(seen))
		}
		for i, action := range actions {
			if seen[i] != action {
				t.Fatalf("post %s: expected action %s at position %d, got %s", postID, action, i, seen[i])
			}
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &collectorService{}, zerolog.Nop())

	for _, postID := range []string{"", "post-a", "0123456789abcdef01234567"} {
		first := d.shardIndex(postID)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(postID); got != first {
				t.Fatalf("shard for %q changed: %d vs %d", postID, first, got)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shard %d out of range for %q", first, postID)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &collectorService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	svc := &collectorService{}
	d := NewDispatcher(1, svc, zerolog.Nop())
	d.Start(ctx)

	d.Record(ports.ActivityEvent{PostID: "post-a"})
	waitFor(t, 2*time.Second, func() bool {
		return len(svc.snapshot()) == 1
	})

	cancel()
	// Give workers a beat to observe cancellation, then verify that a
	// buffered event is no longer drained.
	time.Sleep(20 * time.Millisecond)
	d.Record(ports.ActivityEvent{PostID: "post-a"})
	time.Sleep(50 * time.Millisecond)

	if got := len(svc.snapshot()); got != 1 {
		t.Fatalf("expected no processing after cancel, got %d events", got)
	}
}
