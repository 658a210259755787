package hookstate

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Role is the semantic role a local identifier resolves to.
type Role int

const (
	RoleNone Role = iota
	// RoleInitializer marks a local bound to the tracked state initializer.
	RoleInitializer
	// RoleNamespace marks a namespace or default import of the tracked
	// module; the initializer is reachable as a property on it.
	RoleNamespace
	// RoleMemoizer marks a local bound to the tracked memoizer, consulted
	// only when spelling the memoization fix.
	RoleMemoizer
)

// RoleTable maps local names to roles for one file. Immutable after
// Resolve; shadow-aware lookups go through RoleAt.
type RoleTable struct {
	roles     map[string]Role
	memoLocal string
}

// Resolve derives the role table from a file's import bindings. Imports
// from modules other than the tracked one never register, even when the
// local name coincides with a tracked export.
func Resolve(imports []ImportBinding, cfg Config) *RoleTable {
	table := &RoleTable{roles: make(map[string]Role)}
	for _, b := range imports {
		if b.SourceModule != cfg.Module {
			continue
		}
		switch b.ExportedName {
		case ExportedDefault, ExportedNamespace:
			table.roles[b.LocalName] = RoleNamespace
		case cfg.Initializer:
			table.roles[b.LocalName] = RoleInitializer
		case cfg.Memoizer:
			table.roles[b.LocalName] = RoleMemoizer
			table.memoLocal = b.LocalName
		}
	}
	return table
}

func (t *RoleTable) Empty() bool {
	return len(t.roles) == 0
}

// RoleOf is the shadow-blind lookup.
func (t *RoleTable) RoleOf(local string) Role {
	return t.roles[local]
}

// MemoizerLocal returns the local name bound to the tracked memoizer, or
// "" when it is not imported.
func (t *RoleTable) MemoizerLocal() string {
	return t.memoLocal
}

// RoleAt resolves local at a specific syntax node: any declaration of the
// same name in an enclosing scope hides the imported role.
func (t *RoleTable) RoleAt(local string, node *sitter.Node, scopes *ScopeTree) Role {
	role, ok := t.roles[local]
	if !ok {
		return RoleNone
	}
	if scopes != nil && scopes.Shadowed(local, node) {
		return RoleNone
	}
	return role
}
