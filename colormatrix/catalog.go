package colormatrix

import (
	"fmt"
)

// Filter names accepted by Resolve. These strings are the public API
// surface shared with CLIs and other callers.
const (
	FilterNameProtanopia   = "Protanopia"
	FilterNameDeuteranopia = "Deuteranopia"
	FilterNameTritanopia   = "Tritanopia"
)

// MaxChainLength is the maximum amount of filters that could be applied
// to a single video.
const MaxChainLength = 3

// catalog is initialized once and never mutated afterwards, so it is safe
// to read from any amount of concurrent jobs without synchronization.
var catalog = map[string]Matrix{
	FilterNameProtanopia: {
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	FilterNameDeuteranopia: {
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	FilterNameTritanopia: {
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
}

type ErrUnknownFilter struct {
	Name string
}

func (e ErrUnknownFilter) Error() string {
	return fmt.Sprintf("unknown filter name '%s'", e.Name)
}

type ErrInvalidChainLength struct {
	Length int
}

func (e ErrInvalidChainLength) Error() string {
	return fmt.Sprintf("invalid filter chain length %d: expected between 1 and %d entries", e.Length, MaxChainLength)
}

// FilterNames returns every name known to the catalog. The order is
// unspecified.
func FilterNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

// Resolve maps a filter name to its transform matrix.
func Resolve(name string) (Matrix, error) {
	m, ok := catalog[name]
	if !ok {
		return Matrix{}, ErrUnknownFilter{Name: name}
	}
	return m, nil
}

// ResolveChain resolves an ordered list of 1 to MaxChainLength filter
// names into the matrices to be applied, preserving the order. The order
// is significant: the matrices do not commute.
func ResolveChain(names []string) ([]Matrix, error) {
	if len(names) < 1 || len(names) > MaxChainLength {
		return nil, ErrInvalidChainLength{Length: len(names)}
	}
	result := make([]Matrix, 0, len(names))
	for _, name := range names {
		m, err := Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve filter #%d: %w", len(result), err)
		}
		result = append(result, m)
	}
	return result, nil
}
