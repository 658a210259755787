package hookstate

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type SlotKind int

const (
	// SlotIdentifier binds a plain name.
	SlotIdentifier SlotKind = iota
	// SlotElided is an explicitly skipped position (a hole).
	SlotElided
	// SlotOther is any non-identifier target: nested patterns, defaults,
	// rest elements, member expressions.
	SlotOther
)

type Slot struct {
	Kind SlotKind
	Name string
}

// Pattern is the classified left-hand side of the declaration a tracked
// call's result is destructured into.
type Pattern struct {
	Node       *sitter.Node
	Positional bool
	Slots      []Slot
}

// classifyPattern turns an array_pattern or object_pattern node into the
// closed slot representation. Object patterns carry no positional slots.
func classifyPattern(node *sitter.Node, source []byte) *Pattern {
	if node == nil {
		return nil
	}
	switch node.Kind() {
	case "array_pattern":
		return &Pattern{
			Node:       node,
			Positional: true,
			Slots:      arraySlots(node, source),
		}
	case "object_pattern":
		return &Pattern{Node: node, Positional: false}
	}
	return nil
}

// arraySlots walks the raw children of an array_pattern, splitting on
// commas. An empty segment between commas is a hole; an empty segment
// after the final comma is just a trailing comma and adds no slot.
func arraySlots(node *sitter.Node, source []byte) []Slot {
	var slots []Slot
	var current *Slot

	flush := func() {
		if current == nil {
			slots = append(slots, Slot{Kind: SlotElided})
		} else {
			slots = append(slots, *current)
		}
		current = nil
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		ch := node.Child(i)
		if ch == nil {
			continue
		}
		switch ch.Kind() {
		case "[":
			// opening bracket, nothing pending
		case ",":
			flush()
		case "]":
			if current != nil {
				slots = append(slots, *current)
				current = nil
			}
		case "comment":
			// comments between elements do not occupy a slot
		case "identifier":
			current = &Slot{Kind: SlotIdentifier, Name: nodeText(ch, source)}
		default:
			current = &Slot{Kind: SlotOther}
		}
	}
	return slots
}
