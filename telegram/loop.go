// Copyright (c) 2025 @AmarnathCJD

package telegram

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Loop drives the reactor until a predicate holds. Every pump is followed by
// the after-pump hook and, once an hour, a state lookup so that a quiet
// connection still notices missed updates.
type Loop struct {
	reactor Reactor
	proto   Protocol
	log     *Logger
	now     func() time.Time

	lastLookup time.Time
	pumps      uint64
	afterPump  func() error
}

func NewLoop(reactor Reactor, proto Protocol, log *Logger, now func() time.Time) *Loop {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = NewLogger("loop", LogDisable)
	}
	return &Loop{
		reactor:    reactor,
		proto:      proto,
		log:        log,
		now:        now,
		lastLookup: now(),
	}
}

// Pumps returns the number of reactor iterations run so far.
func (l *Loop) Pumps() uint64 {
	return l.pumps
}

// Wait pumps the reactor until isEnd returns true, which is checked before
// every pump. A nil isEnd never ends: Wait then only returns on error or when
// ctx is done.
func (l *Loop) Wait(ctx context.Context, isEnd func() bool) error {
	for isEnd == nil || !isEnd() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.reactor.RunOnce(); err != nil {
			return errors.Wrap(err, "running reactor")
		}
		l.pumps++

		if l.afterPump != nil {
			if err := l.afterPump(); err != nil {
				return err
			}
		}

		if now := l.now(); now.Sub(l.lastLookup) >= LookupStateInterval {
			l.log.Debug("no state lookup for %s, asking server", now.Sub(l.lastLookup).Round(time.Second))
			l.proto.LookupState()
			l.lastLookup = now
		}
	}
	return nil
}
