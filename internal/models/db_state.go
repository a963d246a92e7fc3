package models

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// DBState is the whole persisted world at one instant.
//
// LastItemID is shared by epics and stories: every create takes
// LastItemID+1, so ids are unique across both maps and never reused.
type DBState struct {
	LastItemID uint32           `json:"last_item_id"`
	Epics      map[uint32]Epic  `json:"epics"`
	Stories    map[uint32]Story `json:"stories"`
}

// NewDBState returns an empty state with initialized maps.
func NewDBState() *DBState {
	return &DBState{
		Epics:   make(map[uint32]Epic),
		Stories: make(map[uint32]Story),
	}
}

// Clone returns a deep copy; story slices are not shared with the original.
func (s *DBState) Clone() *DBState {
	out := &DBState{
		LastItemID: s.LastItemID,
		Epics:      make(map[uint32]Epic, len(s.Epics)),
		Stories:    maps.Clone(s.Stories),
	}
	if out.Stories == nil {
		out.Stories = make(map[uint32]Story)
	}
	for id, epic := range s.Epics {
		epic.Stories = slices.Clone(epic.Stories)
		if epic.Stories == nil {
			epic.Stories = []uint32{}
		}
		out.Epics[id] = epic
	}
	return out
}

// NextID bumps the shared counter and returns the new value. The counter
// never wraps; once it reaches math.MaxUint32 no more ids are handed out.
func (s *DBState) NextID() (uint32, error) {
	if s.LastItemID == math.MaxUint32 {
		return 0, fmt.Errorf("%w: id space exhausted", ErrInvalidInput)
	}
	s.LastItemID++
	return s.LastItemID, nil
}

// SortedEpicIDs returns every epic id in ascending order.
func (s *DBState) SortedEpicIDs() []uint32 {
	return slices.Sorted(maps.Keys(s.Epics))
}

// SortedStoryIDs returns the epic's story ids in ascending order.
func SortedStoryIDs(epic Epic) []uint32 {
	ids := slices.Clone(epic.Stories)
	slices.Sort(ids)
	return ids
}
