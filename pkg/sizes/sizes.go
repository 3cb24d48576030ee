// Package sizes holds the catalog of target bounding boxes that image
// variants are produced for.
package sizes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyCatalog      = errors.New("size catalog is empty")
	ErrInvalidLabel      = errors.New("invalid size label")
	ErrInvalidDimensions = errors.New("size dimensions must be positive")
	ErrDuplicateLabel    = errors.New("duplicate size label")
	ErrInvalidSpec       = errors.New("invalid size spec")
)

// Spec is one named target bounding box
type Spec struct {
	Label     string `json:"label"`
	MaxWidth  int    `json:"max_width"`
	MaxHeight int    `json:"max_height"`
}

// String renders the spec as label:WxH, the same form ParseSpec accepts
func (s Spec) String() string {
	return fmt.Sprintf("%s:%dx%d", s.Label, s.MaxWidth, s.MaxHeight)
}

// Validate checks a single spec in isolation
func (s Spec) Validate() error {
	if s.Label == "" || strings.ContainsAny(s.Label, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, s.Label)
	}
	if s.MaxWidth <= 0 || s.MaxHeight <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDimensions, s)
	}
	return nil
}

// Catalog is an ordered, validated, read-only list of specs
type Catalog struct {
	specs []Spec
}

// NewCatalog validates specs and returns a catalog keeping their order
func NewCatalog(specs ...Spec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[s.Label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, s.Label)
		}
		seen[s.Label] = struct{}{}
	}

	owned := make([]Spec, len(specs))
	copy(owned, specs)
	return &Catalog{specs: owned}, nil
}

// Default returns the standard responsive set: xs, s, m and l
func Default() *Catalog {
	return &Catalog{specs: []Spec{
		{Label: "xs", MaxWidth: 640, MaxHeight: 360},
		{Label: "s", MaxWidth: 960, MaxHeight: 540},
		{Label: "m", MaxWidth: 1280, MaxHeight: 720},
		{Label: "l", MaxWidth: 1600, MaxHeight: 900},
	}}
}

// Specs returns a copy of the catalog entries in order
func (c *Catalog) Specs() []Spec {
	out := make([]Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Lookup finds an entry by label
func (c *Catalog) Lookup(label string) (Spec, bool) {
	for _, s := range c.specs {
		if s.Label == label {
			return s, true
		}
	}
	return Spec{}, false
}

// ParseSpec parses "label:WIDTHxHEIGHT", e.g. "xs:640x360"
func ParseSpec(raw string) (Spec, error) {
	label, dims, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q (want label:WxH)", ErrInvalidSpec, raw)
	}
	w, h, ok := strings.Cut(strings.ToLower(dims), "x")
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q (want label:WxH)", ErrInvalidSpec, raw)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q: width: %v", ErrInvalidSpec, raw, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q: height: %v", ErrInvalidSpec, raw, err)
	}

	s := Spec{Label: label, MaxWidth: width, MaxHeight: height}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// ParseCatalog parses each entry with ParseSpec and builds a catalog from them
func ParseCatalog(entries []string) (*Catalog, error) {
	specs := make([]Spec, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		s, err := ParseSpec(e)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return NewCatalog(specs...)
}
