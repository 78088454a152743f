package scheduler

import (
	"fmt"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// Swap describes an exchange of placements between two entries.
type Swap struct {
	Original models.Entry
	SwapWith models.Entry
}

// SwapResolver attempts to resolve a clash pair by exchanging placements.
type SwapResolver interface {
	TrySwap(entries []models.Entry, a, b models.Entry, reserved StringSet) (Swap, bool)
}

// NewSwapResolver returns the resolver for the named strategy.
func NewSwapResolver(cfg Config) (SwapResolver, error) {
	cfg = cfg.normalized()
	switch cfg.SwapStrategy {
	case SwapStrategyNone:
		return NoopSwapResolver{}, nil
	case SwapStrategyExchange:
		return NewExchangeSwapResolver(cfg), nil
	default:
		return nil, fmt.Errorf("unknown swap strategy %q", cfg.SwapStrategy)
	}
}

// NoopSwapResolver never finds a swap. It keeps the fallback chain identical
// to the room-then-reschedule-then-manual behaviour.
type NoopSwapResolver struct{}

// TrySwap always reports no swap.
func (NoopSwapResolver) TrySwap([]models.Entry, models.Entry, models.Entry, StringSet) (Swap, bool) {
	return Swap{}, false
}

// ExchangeSwapResolver trades the target's placement with another entry of
// equal duration when both sides end up clash-free.
type ExchangeSwapResolver struct {
	match fieldMatcher
}

// NewExchangeSwapResolver builds an exchange resolver.
func NewExchangeSwapResolver(cfg Config) *ExchangeSwapResolver {
	return &ExchangeSwapResolver{match: newFieldMatcher(cfg.StrictFieldMatching)}
}

// TrySwap relocates b (the later entry of the clash) by exchanging day, window
// and room with the first compatible partner in scan order. Swapping a and b
// with each other cannot help since they keep overlapping.
func (r *ExchangeSwapResolver) TrySwap(entries []models.Entry, a, b models.Entry, reserved StringSet) (Swap, bool) {
	targetIdx := indexOf(entries, b)
	if targetIdx < 0 {
		return Swap{}, false
	}
	for i, partner := range entries {
		if i == targetIdx || partner == a || partner.Course == b.Course {
			continue
		}
		if partner.Duration() != b.Duration() {
			continue
		}
		if reserved.Has(partner.Room) || reserved.Has(b.Room) {
			continue
		}
		movedTarget := placeLike(b, partner)
		movedPartner := placeLike(partner, b)
		if r.conflicts(movedTarget, movedPartner) {
			continue
		}
		if r.conflictsWithOthers(entries, movedTarget, targetIdx, i) || r.conflictsWithOthers(entries, movedPartner, targetIdx, i) {
			continue
		}
		return Swap{Original: b, SwapWith: partner}, true
	}
	return Swap{}, false
}

func (r *ExchangeSwapResolver) conflictsWithOthers(entries []models.Entry, moved models.Entry, skip ...int) bool {
	for i, other := range entries {
		if containsIndex(skip, i) {
			continue
		}
		if r.conflicts(moved, other) {
			return true
		}
	}
	return false
}

func (r *ExchangeSwapResolver) conflicts(x, y models.Entry) bool {
	if x.Day != y.Day || !Overlaps(x.StartMin, x.EndMin, y.StartMin, y.EndMin) {
		return false
	}
	return r.match(x.Teacher, y.Teacher) || r.match(x.Room, y.Room) || r.match(x.Year, y.Year)
}

// placeLike returns entry moved into the placement currently held by other.
func placeLike(entry, other models.Entry) models.Entry {
	entry.Day = other.Day
	entry.Room = other.Room
	entry.Start = other.StartLabel()
	entry.End = other.EndLabel()
	entry.StartMin = other.StartMin
	entry.EndMin = other.EndMin
	return entry
}

func indexOf(entries []models.Entry, target models.Entry) int {
	for i, entry := range entries {
		if entry == target {
			return i
		}
	}
	return -1
}

func containsIndex(list []int, idx int) bool {
	for _, v := range list {
		if v == idx {
			return true
		}
	}
	return false
}
