package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a benchmark set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("benchmark set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSet trims whitespace and validates a benchmark set.
func NormalizeSet(set Set) (Set, error) {
	collector := &issueCollector{}
	if set.Version == 0 {
		collector.add("version", "is required")
	} else if set.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", set.Version))
	}
	if len(set.Examples) == 0 {
		collector.add("examples", "must include at least one entry")
	}

	for i, example := range set.Examples {
		prefix := fmt.Sprintf("examples[%d]", i)
		example.Question = strings.TrimSpace(example.Question)
		if example.Question == "" {
			collector.add(prefix+".question", "is required")
		}

		example.ExpectedSubstring = strings.TrimSpace(example.ExpectedSubstring)
		if example.ExpectedSubstring == "" {
			collector.add(prefix+".expected_substring", "is required")
		} else if Normalize(example.ExpectedSubstring) == "" {
			collector.add(prefix+".expected_substring", "normalizes to an empty string")
		}
		set.Examples[i] = example
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return set, nil
}
