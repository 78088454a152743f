package scheduler

import (
	"fmt"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// Resolver turns clashes into suggestions using the fallback chain
// room change, reschedule, swap, manual.
type Resolver struct {
	rooms *RoomFinder
	slots *SlotSearcher
	swaps SwapResolver
}

// NewResolver wires the search components from cfg. A nil swaps uses the
// no-op strategy.
func NewResolver(cfg Config, swaps SwapResolver) *Resolver {
	cfg = cfg.normalized()
	if swaps == nil {
		swaps = NoopSwapResolver{}
	}
	rooms := NewRoomFinder(cfg)
	return &Resolver{
		rooms: rooms,
		slots: NewSlotSearcher(cfg, rooms),
		swaps: swaps,
	}
}

// Resolve performs a single forward pass over clashes. The target of each
// clash is its second entry; a course gets at most one suggestion per pass
// and a room committed to a suggestion is never proposed again. When state is
// nil a fresh one is created. The state used is returned with the suggestions.
func (r *Resolver) Resolve(entries []models.Entry, clashes []models.Clash, state *RunState) ([]models.Suggestion, *RunState) {
	if state == nil {
		state = NewRunState()
	}
	suggestions := make([]models.Suggestion, 0)
	for _, clash := range clashes {
		if len(clash.Entries) < 2 {
			continue
		}
		a, target := clash.Entries[0], clash.Entries[1]
		if state.SuggestedCourses.Has(target.Course) {
			continue
		}
		label := clash.Type.Label()
		issue := fmt.Sprintf("%s involving %s", label, target.Course)

		if room, ok := r.rooms.Find(entries, target.Day, target.StartMin, target.EndMin, target.Room, state.ReservedRooms); ok {
			suggestions = append(suggestions, models.Suggestion{
				ClashType:    clash.Type,
				Issue:        issue,
				Fix:          fmt.Sprintf("Move \"%s\" → room %s (%s %s-%s)", target.Course, room, target.Day, target.StartLabel(), target.EndLabel()),
				Confidence:   models.ConfidenceRoomChange,
				Action:       models.SuggestionActionRoomChange,
				TargetCourse: target.Course,
				Room:         room,
				Day:          target.Day,
				Start:        target.StartLabel(),
				End:          target.EndLabel(),
			})
			state.SuggestedCourses.Add(target.Course)
			state.ReservedRooms.Add(room)
			continue
		}

		if slot, ok := r.slots.Find(entries, target.Teacher, target.Day, target.StartMin, target.EndMin, state.ReservedRooms); ok {
			suggestions = append(suggestions, models.Suggestion{
				ClashType:    clash.Type,
				Issue:        issue,
				Fix:          fmt.Sprintf("Move \"%s\" → %s %s-%s (room %s)", target.Course, slot.Day, slot.StartLabel, slot.EndLabel, slot.Room),
				Confidence:   models.ConfidenceReschedule,
				Action:       models.SuggestionActionReschedule,
				TargetCourse: target.Course,
				Room:         slot.Room,
				Day:          slot.Day,
				Start:        slot.StartLabel,
				End:          slot.EndLabel,
			})
			state.SuggestedCourses.Add(target.Course)
			state.ReservedRooms.Add(slot.Room)
			continue
		}

		if swap, ok := r.swaps.TrySwap(entries, a, target, state.ReservedRooms); ok {
			suggestions = append(suggestions, models.Suggestion{
				ClashType:    clash.Type,
				Issue:        fmt.Sprintf("%s involving %s", label, swap.Original.Course),
				Fix:          fmt.Sprintf("Swap \"%s\" ↔ \"%s\"", swap.Original.Course, swap.SwapWith.Course),
				Confidence:   models.ConfidenceSwap,
				Action:       models.SuggestionActionSwap,
				TargetCourse: swap.Original.Course,
				Room:         swap.SwapWith.Room,
				Day:          swap.SwapWith.Day,
				Start:        swap.SwapWith.StartLabel(),
				End:          swap.SwapWith.EndLabel(),
				SwapWith:     swap.SwapWith.Course,
			})
			state.SuggestedCourses.Add(swap.Original.Course)
			continue
		}

		suggestions = append(suggestions, models.Suggestion{
			ClashType:    clash.Type,
			Issue:        issue,
			Fix:          fmt.Sprintf("Manual reschedule suggested for \"%s\"", target.Course),
			Confidence:   models.ConfidenceManual,
			Action:       models.SuggestionActionManual,
			TargetCourse: target.Course,
		})
		state.SuggestedCourses.Add(target.Course)
	}
	return suggestions, state
}

// Engine bundles detector and resolver built from one configuration.
type Engine struct {
	cfg      Config
	detector *Detector
	resolver *Resolver
}

// NewEngine validates cfg and builds the detector and resolver.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.normalized()
	swaps, err := NewSwapResolver(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, detector: NewDetector(cfg), resolver: NewResolver(cfg, swaps)}, nil
}

// Config returns the normalized configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Detect finds clashes in entries.
func (e *Engine) Detect(entries []models.Entry) []models.Clash {
	return e.detector.Detect(entries)
}

// Resolve runs a resolution pass with fresh run state.
func (e *Engine) Resolve(entries []models.Entry, clashes []models.Clash) ([]models.Suggestion, *RunState) {
	return e.resolver.Resolve(entries, clashes, nil)
}
