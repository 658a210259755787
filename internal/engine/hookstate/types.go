package hookstate

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Config names the tracked module and its two tracked exports. The engine
// is parameterized by it so the same rule can police structurally identical
// conventions under other names.
type Config struct {
	Module      string
	Initializer string
	Memoizer    string
}

func DefaultConfig() Config {
	return Config{
		Module:      "react",
		Initializer: "useState",
		Memoizer:    "useMemo",
	}
}

type Location struct {
	File   string
	Line   int
	Column int
}

// TextEdit replaces the byte range [Start, End) of the analyzed source
// with NewText. Start == End is a pure insertion.
type TextEdit struct {
	Start   uint
	End     uint
	NewText string
}

// FixProposal is one complete alternative rewrite. Description is empty
// for the unlabeled default fix. Edits are ordered by document position
// and never overlap.
type FixProposal struct {
	Description string
	Edits       []TextEdit
}

type Diagnostic struct {
	Message  string
	Location Location
	Fixes    []FixProposal
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

func nodeLocation(node *sitter.Node, file string) Location {
	return Location{
		File:   file,
		Line:   int(node.StartPosition().Row) + 1,
		Column: int(node.StartPosition().Column) + 1,
	}
}
