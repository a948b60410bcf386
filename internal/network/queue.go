// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package network implements the network dispatch loop of spec §4.2: a
// bounded, FIFO, single-consumer queue of backend-events, each resolved
// against the correct backend's orchestrator and applied back into the
// shared application state.
package network

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/tomtom215/servarr-tui/internal/events"
)

// QueueCapacity is the bounded channel depth spec §5 specifies.
const QueueCapacity = 500

const topic = "backend-events"

// Queue is the bounded dispatch channel, backed by watermill's in-process
// gochannel pub/sub (ThreeDotsLabs/watermill/pubsub/gochannel) — the same
// event-bus library cartographus wires its eventprocessor package to,
// without the NATS transport a single-process design has no use for
// (SPEC_FULL.md §B).
//
// watermill messages only carry a message id; the strongly-typed Event
// itself is kept in a local pending map so the orchestrator's type switch
// on Event.Params never has to round-trip through JSON.
type Queue struct {
	pubsub *gochannel.GoChannel
	// msgs is the one subscription, opened by NewQueue so that events
	// enqueued before the consumer starts are delivered, not dropped.
	msgs <-chan *message.Message

	mu      sync.Mutex
	pending map[string]events.Event
}

// NewQueue builds a Queue with the spec's bounded capacity.
func NewQueue() *Queue {
	gc := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: QueueCapacity,
	}, watermill.NewStdLogger(false, false))
	msgs, _ := gc.Subscribe(context.Background(), topic)
	return &Queue{pubsub: gc, msgs: msgs, pending: make(map[string]events.Event)}
}

// Enqueue publishes ev and returns the message id assigned to it, the key
// Take uses to resolve the delivered message back to ev.
func (q *Queue) Enqueue(ev events.Event) (string, error) {
	id := uuid.NewString()
	q.mu.Lock()
	q.pending[id] = ev
	q.mu.Unlock()

	msg := message.NewMessage(id, []byte(id))
	if err := q.pubsub.Publish(topic, msg); err != nil {
		q.mu.Lock()
		delete(q.pending, id)
		q.mu.Unlock()
		return "", err
	}
	return id, nil
}

// Messages exposes the subscriber channel the dispatch loop ranges over.
// Every call returns the same subscription opened by NewQueue; ctx is not
// used, and the channel closes when the Queue is closed.
func (q *Queue) Messages(ctx context.Context) (<-chan *message.Message, error) {
	return q.msgs, nil
}

// Take resolves a delivered message back to its original typed Event,
// removing it from the pending set.
func (q *Queue) Take(msg *message.Message) (events.Event, bool) {
	id := string(msg.Payload)
	q.mu.Lock()
	defer q.mu.Unlock()
	ev, ok := q.pending[id]
	delete(q.pending, id)
	return ev, ok
}

// Depth reports how many events are currently pending, for the queue-depth
// gauge.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close shuts the underlying pub/sub down.
func (q *Queue) Close() error { return q.pubsub.Close() }
