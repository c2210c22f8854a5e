package domain

import "fmt"

// Strategy selects how tags are applied to a node.
type Strategy string

const (
	// StrategyPerTag issues one create call per requested tag, in input
	// order, treating an already-present tag (409) as success.
	StrategyPerTag Strategy = "per-tag"

	// StrategyBulk reads the node's existing tags first and writes only the
	// missing ones in a single create call.
	StrategyBulk Strategy = "bulk"
)

// DefaultStrategy is used when configuration does not name one.
// Bulk issues at most two requests per task regardless of tag count.
const DefaultStrategy = StrategyBulk

// ParseStrategy converts a configuration string into a Strategy.
// An empty string selects DefaultStrategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPerTag, StrategyBulk:
		return Strategy(s), nil
	case "":
		return DefaultStrategy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStrategy, s)
	}
}
