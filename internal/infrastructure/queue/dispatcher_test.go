package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/99minutos/diary/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingRepo struct {
	mu      sync.Mutex
	got     []domain.EntryActivity
	err     error
	block   chan struct{}
	written chan struct{}
}

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{written: make(chan struct{}, 1024)}
}

func (r *recordingRepo) InsertActivity(_ context.Context, a *domain.EntryActivity) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.got = append(r.got, *a)
	r.mu.Unlock()
	r.written <- struct{}{}
	return r.err
}

func (r *recordingRepo) snapshot() []domain.EntryActivity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.EntryActivity(nil), r.got...)
}

func waitWrites(t *testing.T, r *recordingRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.written:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d writes", i, n)
		}
	}
}

func TestDispatcher_PreservesPerEntryOrder(t *testing.T) {
	repo := newRecordingRepo()
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	actions := []domain.ActivityAction{domain.ActivityCreated, domain.ActivityUpdated, domain.ActivityUpdated, domain.ActivityDeleted}
	for _, a := range actions {
		d.Record(domain.EntryActivity{EntryID: "e1", OwnerID: "u1", Action: a})
	}
	waitWrites(t, repo, len(actions))

	cancel()
	d.Wait()

	got := repo.snapshot()
	for i, a := range actions {
		if got[i].Action != a {
			t.Fatalf("record %d: expected %s, got %s", i, a, got[i].Action)
		}
	}
}

func TestDispatcher_InsertFailureDoesNotStopWorker(t *testing.T) {
	repo := newRecordingRepo()
	repo.err = errors.New("db down")
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Record(domain.EntryActivity{EntryID: "e1", Action: domain.ActivityCreated})
	d.Record(domain.EntryActivity{EntryID: "e2", Action: domain.ActivityCreated})
	waitWrites(t, repo, 2)

	cancel()
	d.Wait()
}

func TestDispatcher_RecordNeverBlocks(t *testing.T) {
	repo := newRecordingRepo()
	repo.block = make(chan struct{})
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.EntryActivity{EntryID: "e1", Action: domain.ActivityUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}

	cancel()
	close(repo.block)
	d.Wait()
}

func TestDispatcher_DrainsOnShutdown(t *testing.T) {
	repo := newRecordingRepo()
	d := NewDispatcher(2, repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		d.Record(domain.EntryActivity{EntryID: "e1", Action: domain.ActivityUpdated})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if got := len(repo.snapshot()); got != 5 {
		t.Fatalf("expected 5 drained records, got %d", got)
	}
}

func TestDispatcher_RecordAfterShutdownIsWritten(t *testing.T) {
	repo := newRecordingRepo()
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	d.Record(domain.EntryActivity{EntryID: "e1", OwnerID: "u1", Action: domain.ActivityDeleted})

	got := repo.snapshot()
	if len(got) != 1 || got[0].Action != domain.ActivityDeleted {
		t.Fatalf("expected the late record to be written, got %v", got)
	}
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewDispatcher(8, newRecordingRepo(), zerolog.Nop())
	first := d.shardIndex("entry-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("entry-42") != first {
			t.Fatal("shard index changed between calls")
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
