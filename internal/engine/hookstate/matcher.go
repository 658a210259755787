package hookstate

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// CallSite is one matched call of the tracked initializer.
type CallSite struct {
	// Call is the call_expression node.
	Call *sitter.Node
	// Callee is the function expression of the call.
	Callee *sitter.Node
	// Namespace is the local namespace alias for member-style calls
	// (React.useState). Empty for direct calls.
	Namespace string
	// Declaration and Declarator locate the enclosing single-binding
	// declaration statement, when the call is its sole initializer.
	Declaration *sitter.Node
	Declarator  *sitter.Node
	// Pattern is the destructuring target, or nil when the result is not
	// immediately destructured. Nil-pattern sites are out of the
	// validator's concern.
	Pattern *Pattern
}

// FindCallSites traverses the tree in document order and returns every
// call whose callee resolves to the tracked initializer. Type-argument
// call forms (useState<T>(...)) match identically: the callee field is the
// same bare identifier or member expression.
func FindCallSites(root *sitter.Node, source []byte, table *RoleTable, scopes *ScopeTree, cfg Config) []CallSite {
	var sites []CallSite
	walkCalls(root, source, table, scopes, cfg, &sites)
	return sites
}

func walkCalls(node *sitter.Node, source []byte, table *RoleTable, scopes *ScopeTree, cfg Config, sites *[]CallSite) {
	if node == nil {
		return
	}
	if node.Kind() == "call_expression" {
		if site, ok := matchCall(node, source, table, scopes, cfg); ok {
			attachPattern(&site, source)
			*sites = append(*sites, site)
		}
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkCalls(node.Child(i), source, table, scopes, cfg, sites)
	}
}

func matchCall(call *sitter.Node, source []byte, table *RoleTable, scopes *ScopeTree, cfg Config) (CallSite, bool) {
	callee := call.ChildByFieldName("function")
	if callee == nil {
		return CallSite{}, false
	}

	switch callee.Kind() {
	case "identifier":
		name := nodeText(callee, source)
		if table.RoleAt(name, call, scopes) == RoleInitializer {
			return CallSite{Call: call, Callee: callee}, true
		}

	case "member_expression":
		obj := callee.ChildByFieldName("object")
		prop := callee.ChildByFieldName("property")
		if obj == nil || prop == nil || obj.Kind() != "identifier" {
			return CallSite{}, false
		}
		ns := nodeText(obj, source)
		if table.RoleAt(ns, call, scopes) == RoleNamespace &&
			nodeText(prop, source) == cfg.Initializer {
			return CallSite{Call: call, Callee: callee, Namespace: ns}, true
		}
	}
	return CallSite{}, false
}

// attachPattern captures the destructuring target when the call is the
// sole initializer of exactly one declared binding. Calls that are
// returned, passed as arguments, or re-assigned keep a nil pattern.
func attachPattern(site *CallSite, source []byte) {
	declarator := site.Call.Parent()
	if declarator == nil || declarator.Kind() != "variable_declarator" {
		return
	}
	value := declarator.ChildByFieldName("value")
	if value == nil || value.Id() != site.Call.Id() {
		return
	}

	decl := declarator.Parent()
	if decl == nil {
		return
	}
	switch decl.Kind() {
	case "lexical_declaration", "variable_declaration":
	default:
		return
	}
	if countDeclarators(decl) != 1 {
		return
	}

	site.Declaration = decl
	site.Declarator = declarator
	site.Pattern = classifyPattern(declarator.ChildByFieldName("name"), source)
}

func countDeclarators(decl *sitter.Node) int {
	count := 0
	for i := uint(0); i < decl.NamedChildCount(); i++ {
		ch := decl.NamedChild(i)
		if ch != nil && ch.Kind() == "variable_declarator" {
			count++
		}
	}
	return count
}
