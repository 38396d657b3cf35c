package document

import (
	"fmt"

	"codeshell/internal/log"
	"codeshell/internal/platform"
)

type selectionKind int

const (
	selectSingle selectionKind = iota
	selectOthers
	selectToRight
	selectSaved
	selectAll
)

// Selection names the documents a close request applies to.
type Selection struct {
	kind  selectionKind
	index int
}

// Single selects document i.
func Single(i int) Selection { return Selection{kind: selectSingle, index: i} }

// Others selects every document except i.
func Others(i int) Selection { return Selection{kind: selectOthers, index: i} }

// ToRight selects the documents after i.
func ToRight(i int) Selection { return Selection{kind: selectToRight, index: i} }

// Saved selects every document without unsaved changes.
func Saved() Selection { return Selection{kind: selectSaved} }

// All selects every document.
func All() Selection { return Selection{kind: selectAll} }

func (s Selection) resolve(docs []*Document) []int {
	var out []int
	for i, d := range docs {
		var hit bool
		switch s.kind {
		case selectSingle:
			hit = i == s.index
		case selectOthers:
			hit = i != s.index
		case selectToRight:
			hit = i > s.index
		case selectSaved:
			hit = !d.changed
		case selectAll:
			hit = true
		}
		if hit {
			out = append(out, i)
		}
	}
	return out
}

// Close removes the selected documents that have no unsaved changes.
// Unsaved ones stay open and a single warning names the first of them.
// The current selection follows the document it pointed at when that
// document survives.
func (m *Manager) Close(sel Selection) {
	selected := sel.resolve(m.docs)
	if len(selected) == 0 {
		return
	}

	removed := make(map[int]bool, len(selected))
	var firstUnsaved *Document
	for _, i := range selected {
		if m.docs[i].changed {
			if firstUnsaved == nil {
				firstUnsaved = m.docs[i]
			}
			continue
		}
		removed[i] = true
	}
	if firstUnsaved != nil {
		m.notifier.Notify(platform.LevelWarning,
			fmt.Sprintf("%s has unsaved changes and was not closed", firstUnsaved.path), m.duration)
	}
	if len(removed) == 0 {
		return
	}

	kept := m.docs[:0:0]
	for i, d := range m.docs {
		if !removed[i] {
			kept = append(kept, d)
		}
	}
	m.docs = kept

	next := remapCurrent(m.current, removed, len(m.docs))
	if next != m.current {
		m.current = next
		m.currentChanged = true
	}
	log.LogWithFields(log.F("closed", len(removed)), log.F("open", len(m.docs))).Debug("Closed documents")
}

func remapCurrent(prev int, removed map[int]bool, remaining int) int {
	switch {
	case remaining == 0:
		return NoDocument
	case remaining == 1 || prev == 0:
		return 0
	case prev < 0:
		return prev
	}

	below := 0
	for i := range removed {
		if i < prev {
			below++
		}
	}
	if removed[prev] {
		return max(prev-below-1, 0)
	}
	return prev - below
}
