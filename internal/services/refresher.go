package services

import (
	"context"
	"log"
	"sync"
	"time"

	"flowboard/internal/cachestore"
	"flowboard/internal/gateway"
)

// Refresher periodically rewrites the cache snapshot from the remote
// while it is reachable, so a later offline stretch serves recent data
// instead of whatever the last fallback write left behind. It is the
// proactive version of the read-through resync that list() performs.
type Refresher struct {
	tasks    TaskGateway
	team     TeamGateway
	store    *cachestore.Store
	breaker  *Breaker
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefresher(tasks TaskGateway, team TeamGateway, store *cachestore.Store, breaker *Breaker, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Refresher{
		tasks:    tasks,
		team:     team,
		store:    store,
		breaker:  breaker,
		interval: interval,
	}
}

func (r *Refresher) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.refresh(ctx)
			}
		}
	}()

	log.Printf("refresher: resyncing cache every %s", r.interval)
}

func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
}

func (r *Refresher) refresh(ctx context.Context) {
	if r.breaker.State() == BreakerOpen {
		return
	}

	if tasks, err := r.tasks.ListTasks(ctx, gateway.TaskFilter{}); err == nil {
		r.store.SaveTasks(tasks)
	} else {
		log.Printf("refresher: task resync skipped: %v", err)
	}

	if members, err := r.team.ListMembers(ctx); err == nil {
		r.store.SaveMembers(members)
	} else {
		log.Printf("refresher: team resync skipped: %v", err)
	}
}
