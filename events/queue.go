package events

import "sync/atomic"

const (
	// queueSize must be a power of two for mask arithmetic
	queueSize  = 256
	bufferMask = queueSize - 1
)

// Queue is a lock-free MPSC ring buffer for telemetry events.
//
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK (frame loop + API calls)
//   - Consume: single consumer (the telemetry collaborator)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full. Telemetry is lossy by
// design; the frame loop never blocks on a slow consumer
type Queue struct {
	events    [queueSize]Event
	published [queueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using lock-free CAS with published flags.
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(event Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after the write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > queueSize {
				q.head.CompareAndSwap(currentHead, nextTail-queueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single-consumer design; checks published flags for safety
func (q *Queue) Consume() []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > queueSize {
			maxAvailable = queueSize
			currentHead = currentTail - queueSize
		}

		result := make([]Event, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & bufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
