package hookstate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// verdict is the outcome of the pattern decision table. It is evaluated
// top-to-bottom and total over the slot variants.
type verdict int

const (
	verdictValid verdict = iota
	// verdictUnfixable reports the diagnostic with zero proposals.
	verdictUnfixable
	// verdictRename offers the rename-in-place fix when a value name can
	// be anchored.
	verdictRename
	// verdictMemoize marks a single-captured value: memoization fix first,
	// rename fix second.
	verdictMemoize
)

// classifyVerdict applies the decision table to a non-nil pattern:
//
//  1. object-like patterns never satisfy the positional pair convention
//  2. an empty pattern leaves no value name to anchor a suggestion
//  3. [value, setValue] with the conventional prefix is valid
//  4. a lone captured value suggests the setter was never needed
//  5. everything else is rewritten to the canonical two-slot form
func classifyVerdict(p *Pattern) verdict {
	if !p.Positional {
		return verdictUnfixable
	}

	switch len(p.Slots) {
	case 0:
		return verdictUnfixable
	case 1:
		if p.Slots[0].Kind == SlotIdentifier {
			return verdictMemoize
		}
		return verdictUnfixable
	case 2:
		if p.Slots[0].Kind == SlotIdentifier && p.Slots[1].Kind == SlotIdentifier &&
			p.Slots[1].Name == "set"+capitalize(p.Slots[0].Name) {
			return verdictValid
		}
	}
	return verdictRename
}

// anchorValueName picks the identifier the rewritten pair is named after:
// the first slot when it binds a name, otherwise a name derived from a
// conventional setter in the second slot ([, setColor] anchors "color").
func anchorValueName(p *Pattern) string {
	if len(p.Slots) == 0 {
		return ""
	}
	if p.Slots[0].Kind == SlotIdentifier {
		return p.Slots[0].Name
	}
	if len(p.Slots) >= 2 && p.Slots[1].Kind == SlotIdentifier {
		if rest, ok := setterStem(p.Slots[1].Name); ok {
			return decapitalize(rest)
		}
	}
	return ""
}

// setterStem strips the conventional "set" prefix, requiring an upper-case
// continuation so that names like "settings" do not qualify.
func setterStem(name string) (string, bool) {
	rest := strings.TrimPrefix(name, "set")
	if rest == name || rest == "" {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}
	return rest, true
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func decapitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || size == 0 {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
