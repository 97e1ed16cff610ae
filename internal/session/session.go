// Package session owns the per-bill wizard state: participants, the
// item ledger, the allocation map, the tip and the current stage.
//
// A session walks a fixed linear stage sequence (PEOPLE → UPLOAD →
// ITEMS → TIPS → SPLIT → SUMMARY) one step at a time; the only way
// back to the start besides stepping is a full reset. All state is
// transient and lives in the in-memory store.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/splitcheck/splitcheck-backend/internal/domain/ledger"
	"github.com/splitcheck/splitcheck-backend/internal/domain/settle"
	"github.com/splitcheck/splitcheck-backend/internal/domain/split"
)

// Stage is a step of the bill-splitting wizard.
type Stage string

// Wizard stages in order.
const (
	StagePeople  Stage = "PEOPLE"
	StageUpload  Stage = "UPLOAD"
	StageItems   Stage = "ITEMS"
	StageTips    Stage = "TIPS"
	StageSplit   Stage = "SPLIT"
	StageSummary Stage = "SUMMARY"
)

var stageOrder = []Stage{
	StagePeople,
	StageUpload,
	StageItems,
	StageTips,
	StageSplit,
	StageSummary,
}

var (
	// ErrNotFound is returned for unknown session ids.
	ErrNotFound = errors.New("session not found")
	// ErrEmptyName is returned when a participant name is blank.
	ErrEmptyName = errors.New("participant name must not be empty")
	// ErrNoPeople blocks advancing past PEOPLE with no participants.
	ErrNoPeople = errors.New("at least one participant is required")
	// ErrNotFullySplit blocks advancing past SPLIT while an item has
	// no assignment at all.
	ErrNotFullySplit = errors.New("every item needs at least one assignment")
)

// Person is a bill participant.
type Person struct {
	ID   string
	Name string
}

// Session aggregates all wizard state for one bill.
type Session struct {
	ID        string
	Stage     Stage
	People    []Person
	Items     *ledger.Ledger
	Splits    split.Assignments
	Tip       float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Stage:     StagePeople,
		Items:     ledger.New(),
		Splits:    split.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Advance moves to the next stage. Leaving PEOPLE requires at least
// one participant, leaving SPLIT requires every item to carry some
// assignment. At SUMMARY it is a no-op.
func (s *Session) Advance() error {
	switch s.Stage {
	case StagePeople:
		if len(s.People) == 0 {
			return ErrNoPeople
		}
	case StageSplit:
		if !s.Splits.FullyAssigned(s.Items.Items()) {
			return ErrNotFullySplit
		}
	}

	for i, stage := range stageOrder {
		if stage == s.Stage && i < len(stageOrder)-1 {
			s.Stage = stageOrder[i+1]
			break
		}
	}
	return nil
}

// Back moves to the previous stage; at PEOPLE it is a no-op.
func (s *Session) Back() {
	for i, stage := range stageOrder {
		if stage == s.Stage && i > 0 {
			s.Stage = stageOrder[i-1]
			break
		}
	}
}

// Reset clears all state and returns the session to PEOPLE.
func (s *Session) Reset() {
	s.Stage = StagePeople
	s.People = nil
	s.Items.Clear()
	s.Splits = split.New()
	s.Tip = 0
}

// AddPerson registers a participant with a trimmed, non-empty name.
func (s *Session) AddPerson(name string) (Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Person{}, ErrEmptyName
	}
	person := Person{ID: uuid.NewString(), Name: name}
	s.People = append(s.People, person)
	return person, nil
}

// RemovePerson deletes a participant and cascades into the allocation
// map. It reports whether the person existed.
func (s *Session) RemovePerson(id string) bool {
	for i, person := range s.People {
		if person.ID == id {
			s.People = append(s.People[:i], s.People[i+1:]...)
			s.Splits.RemovePerson(id)
			return true
		}
	}
	return false
}

// RemoveItem deletes a ledger item and cascades into the allocation
// map, so the item's assigned total reads 0 afterwards.
func (s *Session) RemoveItem(id string) bool {
	if !s.Items.Remove(id) {
		return false
	}
	s.Splits.RemoveItem(id)
	return true
}

// ReplaceItems swaps the item list for a freshly recognized one and
// discards all existing assignments (the old item ids are gone).
func (s *Session) ReplaceItems(items []ledger.Item) {
	s.Items.Replace(items)
	s.Splits = split.New()
}

// AdjustResult describes the outcome of a split adjustment.
type AdjustResult struct {
	Quantity      float64
	AssignedTotal float64
	Remaining     float64
}

// AdjustSplit changes a participant's share of an item by delta,
// clamped to the item's remaining headroom. An unknown item id is a
// no-op and reports false.
func (s *Session) AdjustSplit(itemID, personID string, delta float64) (AdjustResult, bool) {
	item, ok := s.Items.Get(itemID)
	if !ok {
		return AdjustResult{}, false
	}
	qty := s.Splits.Adjust(itemID, personID, delta, item.Quantity)
	assigned := s.Splits.AssignedTotal(itemID)
	return AdjustResult{
		Quantity:      qty,
		AssignedTotal: assigned,
		Remaining:     item.Quantity - assigned,
	}, true
}

// Settle computes the per-person settlement for the current state.
func (s *Session) Settle() settle.Settlement {
	people := make([]settle.Person, len(s.People))
	for i, p := range s.People {
		people[i] = settle.Person{ID: p.ID, Name: p.Name}
	}
	return settle.Compute(people, s.Items.Items(), s.Splits, s.Tip)
}
