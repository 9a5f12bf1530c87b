// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/graintile"
//	"github.com/unkn0wn-root/graintile/hooks/async"
//	"github.com/unkn0wn-root/graintile/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery:    10, // sample logs: ~every 10th self-heal
//	    SynthesizedEvery: 1,  // log every synthesis
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := graintile.New(graintile.Options{
//	    Namespace: "app:prod",
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/graintile"
)

type Hooks struct {
	inner graintile.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ graintile.Hooks = (*Hooks)(nil)

func New(inner graintile.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string)      { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) StoreSetRejected(k string) { h.try(func() { h.inner.StoreSetRejected(k) }) }
func (h *Hooks) FallbackServed(in string)  { h.try(func() { h.inner.FallbackServed(in) }) }
func (h *Hooks) ValidationRejected(in string, err error) {
	h.try(func() { h.inner.ValidationRejected(in, err) })
}
func (h *Hooks) Synthesized(k string, size int) {
	h.try(func() { h.inner.Synthesized(k, size) })
}
