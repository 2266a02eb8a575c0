package publisher

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

// SeriesComputer computes a series from a parameter snapshot
type SeriesComputer interface {
	ComputeSeries(req series.Request) (*domain.Series, error)
}

// Subscriber receives every newly published series
type Subscriber func(*domain.Series)

type subscription struct {
	id uuid.UUID
	fn Subscriber
}

// Publisher holds the current parameter snapshot and republishes a fresh
// series to every subscriber whenever the snapshot changes.
// It is not safe for concurrent use; drive it from a single goroutine.
type Publisher struct {
	computer    SeriesComputer
	logger      *zerolog.Logger
	request     series.Request
	current     *domain.Series
	subscribers []subscription
}

// NewPublisher creates a new Publisher with no snapshot
func NewPublisher(computer SeriesComputer, logger *zerolog.Logger) *Publisher {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Publisher{
		computer: computer,
		logger:   logger,
	}
}

// Subscribe registers fn and returns the ID used to unsubscribe
// If a series has already been published, fn receives it immediately
func (p *Publisher) Subscribe(fn Subscriber) uuid.UUID {
	id := uuid.New()
	p.subscribers = append(p.subscribers, subscription{id: id, fn: fn})
	if p.current != nil {
		fn(p.current)
	}
	return id
}

// Unsubscribe removes a subscriber. Returns false if the ID is unknown.
func (p *Publisher) Unsubscribe(id uuid.UUID) bool {
	for i, s := range p.subscribers {
		if s.id == id {
			// Build a new slice so an Update ranging over the old one is unaffected
			kept := make([]subscription, 0, len(p.subscribers)-1)
			kept = append(kept, p.subscribers[:i]...)
			p.subscribers = append(kept, p.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// Current returns the last published series, or nil before the first update
func (p *Publisher) Current() *domain.Series {
	return p.current
}

// Request returns the current parameter snapshot
func (p *Publisher) Request() series.Request {
	return p.request
}

// Update replaces the snapshot, recomputes and notifies every subscriber
// On failure the previous snapshot and series stay in place and nothing is published
func (p *Publisher) Update(req series.Request) error {
	result, err := p.computer.ComputeSeries(req)
	if err != nil {
		return fmt.Errorf("failed to recompute series: %w", err)
	}

	p.request = req
	p.current = result

	p.logger.Debug().
		Int("points", result.Len()).
		Int("subscribers", len(p.subscribers)).
		Msg("publishing series")

	// Everyone subscribed when the update started is notified exactly once
	subscribers := p.subscribers
	for _, s := range subscribers {
		s.fn(result)
	}
	return nil
}

// SetParam changes one field of one variant and republishes
// The snapshot is copied, never modified in place
func (p *Publisher) SetParam(variant int, field string, value float64) error {
	if variant < 0 || variant >= len(p.request.Variants) {
		return fmt.Errorf("variant index %d out of range [0, %d)", variant, len(p.request.Variants))
	}

	v := p.request.Variants[variant]
	params, err := v.Params.WithField(field, value)
	if err != nil {
		return err
	}

	next := p.request
	next.Variants = make([]domain.Variant, len(p.request.Variants))
	copy(next.Variants, p.request.Variants)
	next.Variants[variant] = domain.Variant{Label: v.Label, Params: params}

	return p.Update(next)
}

// SetDomain replaces the sample domain and republishes
func (p *Publisher) SetDomain(d domain.SampleDomain) error {
	if len(p.request.Variants) == 0 {
		return errors.New("publisher has no parameter snapshot")
	}
	next := p.request
	next.Domain = d
	return p.Update(next)
}
