package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/api/metrics"
	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher persists entry activity off the request path. Records are
// sharded by entry ID so the trail of a single entry is written in order.
type Dispatcher struct {
	workers []chan domain.EntryActivity
	repo    ports.ActivityRepository
	log     zerolog.Logger
	wg      sync.WaitGroup

	// mu guards stopped. Record holds the read lock while it enqueues so
	// nothing lands on a channel after its worker started draining.
	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.EntryActivity, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.EntryActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain what is already
// queued and stop once ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record hands a record to the worker responsible for its entry. It never
// blocks on a busy worker: when that worker's channel is full the record is
// dropped. Once the workers have stopped, the record is written inline.
func (d *Dispatcher) Record(a domain.EntryActivity) {
	idx := d.shardIndex(a.EntryID)
	if !d.enqueue(idx, a) {
		d.write(context.Background(), idx, a)
	}
}

// enqueue reports false when the workers have already stopped.
func (d *Dispatcher) enqueue(idx int, a domain.EntryActivity) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return false
	}

	select {
	case d.workers[idx] <- a:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivityErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("entry_id", a.EntryID).
			Str("action", string(a.Action)).
			Int("worker_id", idx).
			Msg("activity queue full, record dropped")
	}
	return true
}

// shardIndex maps an entry ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(entryID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entryID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.EntryActivity) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			d.stop()
			d.drain(id, ch)
			return
		case a := <-ch:
			metrics.ActivityQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.write(context.WithoutCancel(ctx), id, a)
		}
	}
}

func (d *Dispatcher) stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

// drain flushes records queued before shutdown.
func (d *Dispatcher) drain(id int, ch <-chan domain.EntryActivity) {
	for {
		select {
		case a := <-ch:
			d.write(context.Background(), id, a)
		default:
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, a domain.EntryActivity) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	start := time.Now()
	err := d.repo.InsertActivity(ctx, &a)
	metrics.ActivityWriteDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		d.log.Error().Err(err).
			Str("entry_id", a.EntryID).
			Str("action", string(a.Action)).
			Int("worker_id", id).
			Msg("activity write failed")
	}
}
