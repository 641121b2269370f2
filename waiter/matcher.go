package waiter

import (
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Comparator is the comparison applied between the value a path selects and
// the expected value.
type Comparator int

// Enumeration of path comparators.
const (
	// StringEquals matches when the selected value is a string equal to the
	// expected value.
	StringEquals Comparator = iota

	// BooleanEquals matches when the selected value is a boolean whose
	// string form equals the expected value, "true" or "false".
	BooleanEquals
)

// PathMatcher is a waiter acceptor that selects a value from an operation's
// output with a JMESPath expression, and compares it to Expected.
type PathMatcher struct {
	// JMESPath expression evaluated against the output.
	Path string

	// Expected is the value the selected value is compared against.
	Expected string

	Comparator Comparator
}

// Match evaluates the path against output. Returns an error if the expression
// is invalid or selects a value the comparator cannot compare.
func (m PathMatcher) Match(output interface{}) (bool, error) {
	v, err := jmespath.Search(m.Path, output)
	if err != nil {
		return false, fmt.Errorf("error evaluating waiter state, %w", err)
	}

	switch m.Comparator {
	case StringEquals:
		switch tv := v.(type) {
		case nil:
			return false, nil
		case string:
			return tv == m.Expected, nil
		case *string:
			return tv != nil && *tv == m.Expected, nil
		default:
			return false, fmt.Errorf("expected %s value to be a string, got %T", m.Path, v)
		}

	case BooleanEquals:
		switch tv := v.(type) {
		case nil:
			return false, nil
		case bool:
			return fmt.Sprintf("%t", tv) == m.Expected, nil
		case *bool:
			return tv != nil && fmt.Sprintf("%t", *tv) == m.Expected, nil
		default:
			return false, fmt.Errorf("expected %s value to be a boolean, got %T", m.Path, v)
		}

	default:
		return false, fmt.Errorf("unknown comparator %d", int(m.Comparator))
	}
}
