// Package sloghooks is a ready-made Hooks sink over log/slog with sampling
// for the chatty events. Wrap with hooks/async if the handler is slow.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/graintile"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery    uint64
	SynthesizedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	synthCtr    atomic.Uint64
}

var _ graintile.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("graintile.self_heal",
		"key", storageKey,
		"reason", reason)
}

func (h *Hooks) StoreSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("graintile.store_set_rejected",
		"key", storageKey)
}

func (h *Hooks) ValidationRejected(input string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("graintile.validation_rejected",
		"input", input,
		"err", err)
}

func (h *Hooks) FallbackServed(input string) {
	if h.l == nil {
		return
	}
	h.l.Info("graintile.fallback_served",
		"input", input)
}

func (h *Hooks) Synthesized(key string, size int) {
	if h.l == nil || !sample(h.opts.SynthesizedEvery, &h.synthCtr) {
		return
	}
	h.l.Debug("graintile.synthesized",
		"key", key,
		"bytes", size)
}
