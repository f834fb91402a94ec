package core

import (
	"sort"
	"strings"
)

// PropertyNameSet is a closed set of recognized property names, supplied by
// configuration rather than a global registry. An empty set recognizes
// nothing.
//
// Legacy surface: current callers resolve names through field descriptors
// instead, but the membership check is kept for older integrations.
type PropertyNameSet struct {
	names map[string]struct{}
}

func NewPropertyNameSet(names []string) PropertyNameSet {
	set := PropertyNameSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set.names[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is a member of the set. Matching is exact:
// casing and whitespace are the caller's responsibility.
func (s PropertyNameSet) Contains(name string) bool {
	if len(s.names) == 0 {
		return false
	}
	_, ok := s.names[name]
	return ok
}

func (s PropertyNameSet) Len() int {
	return len(s.names)
}

func (s PropertyNameSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
