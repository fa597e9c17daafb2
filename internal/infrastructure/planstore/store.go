// Package planstore holds the authoritative in-process copy of the
// subscription-plan catalog and fans out change notifications to decoupled
// observers. The store presents the same repository surface a
// database-backed implementation would, so callers are unaffected when one
// replaces it.
package planstore

import (
	"context"
	"fmt"
	"sync"

	"luma/internal/domain/plan"
	"luma/internal/shared/errors"
	"luma/internal/shared/id"
	"luma/internal/shared/logger"
)

// Store implements plan.Repository and plan.Watcher. Mutations run under a
// single mutex, so calls from one caller are strictly ordered and no partial
// state is ever visible. Notifications are dispatched on fresh goroutines,
// never synchronously inside the mutating call, so a subscriber that reacts
// by mutating again cannot recurse unboundedly.
type Store struct {
	mu     sync.RWMutex
	plans  map[string]*plan.Plan
	order  []string
	logger logger.Interface

	subMu     sync.Mutex
	subs      map[uint64]func()
	nextSubID uint64
}

func New(logger logger.Interface) *Store {
	return &Store{
		plans:  make(map[string]*plan.Plan),
		subs:   make(map[uint64]func()),
		logger: logger,
	}
}

// List returns an independent snapshot of the full collection, in insertion
// order. Callers can never reach store internals through the result.
func (s *Store) List(ctx context.Context) ([]*plan.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*plan.Plan, 0, len(s.order))
	for _, planID := range s.order {
		result = append(result, s.plans[planID].Clone())
	}
	return result, nil
}

// ListActive returns snapshots of plans visible on public surfaces.
func (s *Store) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*plan.Plan, 0, len(s.order))
	for _, planID := range s.order {
		if p := s.plans[planID]; p.IsActive() {
			result = append(result, p.Clone())
		}
	}
	return result, nil
}

// GetByID returns a snapshot, or (nil, nil) when the id is unknown.
func (s *Store) GetByID(ctx context.Context, planID string) (*plan.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[planID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// Create inserts a plan and notifies subscribers. When the plan carries no
// id the store assigns one; attached prices are rebound to the assigned id
// by the entity, so caller-supplied back-references never survive.
func (s *Store) Create(ctx context.Context, p *plan.Plan) error {
	if p.ID() == "" {
		planID, err := id.NewPlanID()
		if err != nil {
			return fmt.Errorf("failed to generate plan id: %w", err)
		}
		if err := p.SetID(planID); err != nil {
			return fmt.Errorf("failed to assign plan id: %w", err)
		}
	}

	s.mu.Lock()
	if _, exists := s.plans[p.ID()]; exists {
		s.mu.Unlock()
		return errors.NewConflictError("plan already exists", p.ID())
	}
	s.plans[p.ID()] = p.Clone()
	s.order = append(s.order, p.ID())
	s.mu.Unlock()

	s.logger.Infow("plan created", "plan_id", p.ID(), "name", p.Name())
	s.notify()
	return nil
}

// Update replaces the stored plan with the given snapshot and notifies
// subscribers. NotFound when the id is unknown.
func (s *Store) Update(ctx context.Context, p *plan.Plan) error {
	s.mu.Lock()
	if _, exists := s.plans[p.ID()]; !exists {
		s.mu.Unlock()
		return errors.NewNotFoundError("plan not found", p.ID())
	}
	s.plans[p.ID()] = p.Clone()
	s.mu.Unlock()

	s.logger.Infow("plan updated", "plan_id", p.ID())
	s.notify()
	return nil
}

// ToggleStatus flips the visibility flag in place, atomically, and notifies
// subscribers. NotFound when the id is unknown.
func (s *Store) ToggleStatus(ctx context.Context, planID string, active bool) (*plan.Plan, error) {
	s.mu.Lock()
	p, ok := s.plans[planID]
	if !ok {
		s.mu.Unlock()
		return nil, errors.NewNotFoundError("plan not found", planID)
	}
	if active {
		p.Activate()
	} else {
		p.Deactivate()
	}
	snapshot := p.Clone()
	s.mu.Unlock()

	s.logger.Infow("plan status toggled", "plan_id", planID, "active", active)
	s.notify()
	return snapshot, nil
}

// Delete removes the plan and notifies subscribers. NotFound when the id is
// unknown.
func (s *Store) Delete(ctx context.Context, planID string) error {
	s.mu.Lock()
	if _, exists := s.plans[planID]; !exists {
		s.mu.Unlock()
		return errors.NewNotFoundError("plan not found", planID)
	}
	delete(s.plans, planID)
	for i, existing := range s.order {
		if existing == planID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Infow("plan deleted", "plan_id", planID)
	s.notify()
	return nil
}

// Subscribe registers fn in an identity-keyed registry and schedules one
// initial asynchronous invocation, so a freshly mounted observer treats
// first load and updates identically. The returned func removes exactly
// this registration; calling it more than once is a safe no-op.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	subID := s.nextSubID
	s.nextSubID++
	s.subs[subID] = fn
	s.subMu.Unlock()

	go fn()

	return func() {
		s.subMu.Lock()
		delete(s.subs, subID)
		s.subMu.Unlock()
	}
}

// notify fans out to all current subscribers. Callbacks carry no payload;
// observers re-read the collection. Delivery order across subscribers is
// unspecified.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		go fn()
	}
}
