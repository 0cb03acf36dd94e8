package domain

import "slices"

// FavoriteSet is a set of hall names curated by the user.
type FavoriteSet map[string]struct{}

func NewFavoriteSet(names ...string) FavoriteSet {
	s := make(FavoriteSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s FavoriteSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order so persisted output is stable.
func (s FavoriteSet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// ToggleFavorite returns a new set with name removed if present, added otherwise.
// The input set is not modified.
func ToggleFavorite(s FavoriteSet, name string) FavoriteSet {
	out := make(FavoriteSet, len(s)+1)
	for n := range s {
		out[n] = struct{}{}
	}

	if _, ok := out[name]; ok {
		delete(out, name)
	} else {
		out[name] = struct{}{}
	}

	return out
}

// ToggleFavoriteOrder is ToggleFavorite over an ordered list: name is removed
// if present, appended otherwise. The input slice is not modified.
func ToggleFavoriteOrder(names []string, name string) []string {
	if i := slices.Index(names, name); i >= 0 {
		return slices.Delete(slices.Clone(names), i, i+1)
	}
	return append(slices.Clone(names), name)
}
