// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package playback drives live animation preview: a clock-owning
// controller advances the current time, recomputes element state
// snapshots through the simulate evaluator, and broadcasts them to
// subscribers at the active quality preset's rate. One controller is
// constructed per open document; it is never a process-wide singleton,
// so disposing a document cannot interfere with another.
package playback

import (
	"sync"
	"time"

	"github.com/jinzhu/copier"

	"github.com/inkform/vganim/anim"
	"github.com/inkform/vganim/anim/simulate"
	"github.com/inkform/vganim/base/logx"
)

// tickInterval is the internal clock granularity. The loop always
// reschedules at this rate; the quality preset only throttles how often
// subscribers are notified.
const tickInterval = time.Second / 120

// Element is an entry of the external element store: id, element type,
// and the store's opaque payload. The controller only uses the ids, to
// restrict snapshots to elements that still exist.
type Element struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// Frame is one immutable broadcast payload: the time it was computed
// for and the element states at that time. Consumers hold the latest
// Frame by reference; they never poll the controller through live
// getters.
type Frame struct {
	Time   float64
	States map[string]*simulate.ElementState
}

// Listener receives broadcast frames. A panicking listener is caught
// and logged without affecting other listeners or the playback loop.
type Listener func(Frame)

// Controller is the playback state machine: stopped (time 0, not
// advancing), playing (time advances), or paused (time frozen). It is
// the sole owner of the mutable playback state; all methods are safe
// for concurrent use.
type Controller struct {
	mu            sync.Mutex
	presets       *Presets
	quality       Quality
	records       []*anim.Record
	targets       map[string]bool
	playing       bool
	disposed      bool
	pausedTime    float64
	anchor        time.Time
	lastBroadcast time.Time
	subs          map[int]Listener
	nextSub       int
	stopc         chan struct{}
}

// NewController returns a stopped controller with the built-in Preview
// quality preset and no data.
func NewController() *Controller {
	p := DefaultPresets()
	return &Controller{
		presets: p,
		quality: p.For(Preview),
		subs:    map[int]Listener{},
	}
}

// SetPresets installs a preset table (for example one loaded with
// [OpenPresets]) and reapplies the current mode from it.
func (c *Controller) SetPresets(p *Presets) {
	if p == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presets = p
	c.quality = p.For(c.quality.Mode)
}

// SetQuality swaps the active preset. The swap is atomic between
// ticks; it never recomputes past frames.
func (c *Controller) SetQuality(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quality = c.presets.For(mode)
}

// Quality returns the active preset.
func (c *Controller) Quality() Quality {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quality
}

// SetData replaces the animation records and element references the
// controller evaluates. Records are deep-copied so later edits through
// the editing surface cannot race the tick loop.
func (c *Controller) SetData(records []*anim.Record, elements []Element) {
	var recs []*anim.Record
	if err := copier.CopyWithOption(&recs, records, copier.Option{DeepCopy: true}); err != nil {
		logx.Error("playback: copying records", "err", err)
		recs = records
	}
	var targets map[string]bool
	if len(elements) > 0 {
		targets = make(map[string]bool, len(elements))
		for _, el := range elements {
			targets[el.ID] = true
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.records = recs
	c.targets = targets
}

// Play starts advancing time from the current position. It is a no-op
// while already playing or after Dispose.
func (c *Controller) Play() {
	c.mu.Lock()
	if c.disposed || c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.anchor = time.Now().Add(-seconds(c.pausedTime))
	stopc := make(chan struct{})
	c.stopc = stopc
	c.mu.Unlock()
	go c.loop(stopc)
}

// Pause halts the loop, freezing the current time.
func (c *Controller) Pause() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.pausedTime = time.Since(c.anchor).Seconds()
	c.playing = false
	stopc := c.stopc
	c.stopc = nil
	c.mu.Unlock()
	if stopc != nil {
		close(stopc)
	}
}

// Stop halts the loop, resets time to 0, and broadcasts the t=0 state
// immediately.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.playing = false
	c.pausedTime = 0
	stopc := c.stopc
	c.stopc = nil
	c.lastBroadcast = time.Now()
	frame := c.frameLocked(0)
	subs := c.listenersLocked()
	c.mu.Unlock()
	if stopc != nil {
		close(stopc)
	}
	deliver(subs, frame)
}

// SeekTo jumps to the given time in seconds. If playing, playback
// continues smoothly from the new position. The new state is broadcast
// immediately, bypassing the throttle.
func (c *Controller) SeekTo(t float64) {
	if t < 0 {
		t = 0
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.pausedTime = t
	if c.playing {
		c.anchor = time.Now().Add(-seconds(t))
	}
	c.lastBroadcast = time.Now()
	frame := c.frameLocked(t)
	subs := c.listenersLocked()
	c.mu.Unlock()
	deliver(subs, frame)
}

// CurrentTime returns the current playback time in seconds. Seeks and
// pauses are reflected immediately, before the next tick.
func (c *Controller) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		return time.Since(c.anchor).Seconds()
	}
	return c.pausedTime
}

// IsPlaying reports whether time is advancing.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Subscribe registers a listener for broadcast frames and returns its
// unsubscribe function. Subscribers are independent of each other.
func (c *Controller) Subscribe(fn Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || fn == nil {
		return func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// ElementStates computes the element states at the current time. This
// is the pull-model entry point used by scrubbers; the push model goes
// through Subscribe.
func (c *Controller) ElementStates() map[string]*simulate.ElementState {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.pausedTime
	if c.playing {
		t = time.Since(c.anchor).Seconds()
	}
	return c.frameLocked(t).States
}

// Dispose stops playback, clears all subscribers, and drops the cached
// records and element references. The controller must not be reused
// afterwards; every method is a no-op on a disposed controller.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.playing = false
	c.pausedTime = 0
	stopc := c.stopc
	c.stopc = nil
	c.records = nil
	c.targets = nil
	c.subs = nil
	c.mu.Unlock()
	if stopc != nil {
		close(stopc)
	}
}

// loop is the frame loop: it always reschedules at tickInterval while
// playing; only subscriber notification is throttled.
func (c *Controller) loop(stopc chan struct{}) {
	tk := time.NewTicker(tickInterval)
	defer tk.Stop()
	for {
		select {
		case <-stopc:
			return
		case now := <-tk.C:
			c.tick(now)
		}
	}
}

func (c *Controller) tick(now time.Time) {
	c.mu.Lock()
	if !c.playing || c.disposed {
		c.mu.Unlock()
		return
	}
	elapsed := now.Sub(c.anchor).Seconds()
	if now.Sub(c.lastBroadcast) < c.quality.BroadcastInterval() {
		c.mu.Unlock()
		return
	}
	c.lastBroadcast = now
	frame := c.frameLocked(elapsed)
	subs := c.listenersLocked()
	c.mu.Unlock()
	deliver(subs, frame)
}

// frameLocked computes the broadcast frame for time t. Callers hold
// the lock; the evaluation itself is pure and reads only the immutable
// record copies.
func (c *Controller) frameLocked(t float64) Frame {
	states := simulate.Snapshot(c.records, t)
	if c.targets != nil {
		for id := range states {
			if !c.targets[id] {
				delete(states, id)
			}
		}
	}
	return Frame{Time: t, States: states}
}

func (c *Controller) listenersLocked() []Listener {
	if len(c.subs) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}

func deliver(subs []Listener, f Frame) {
	for _, fn := range subs {
		safeCall(fn, f)
	}
}

// safeCall notifies one listener, containing panics so one bad
// listener cannot starve the others or kill the loop.
func safeCall(fn Listener, f Frame) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error("playback: listener panic", "panic", r)
		}
	}()
	fn(f)
}

func seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
