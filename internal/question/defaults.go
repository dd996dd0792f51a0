package question

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yml
var defaultSetYAML []byte

// DefaultSet returns the built-in benchmark set: seven factual QA pairs
// spanning capitals, authorship, chemistry, and a numeric fact. The set
// is parsed fresh on each call so callers may not corrupt shared state.
func DefaultSet() Set {
	set, err := parseYAMLSet(defaultSetYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded benchmark set is invalid: %v", err))
	}
	normalized, err := NormalizeSet(set)
	if err != nil {
		panic(fmt.Sprintf("embedded benchmark set is invalid: %v", err))
	}
	return normalized
}
