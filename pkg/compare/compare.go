// Package compare applies set operations to n-gram sequences and to the keys
// of frequency maps. Results keep the order of the first input and never
// contain duplicates.
package compare

// Keyed is anything that exposes an ordered list of keys, such as
// *metrics.FrequencyMap.
type Keyed interface {
	Keys() []string
}

// Comparison is what two sequences share and what each has on its own.
type Comparison struct {
	Intersection     []string    `json:"intersection" msgpack:"intersection"`
	DisjunctiveUnion [2][]string `json:"disjunctive_union" msgpack:"disjunctive_union"`
}

// OnlyFirst returns the entries unique to the first input.
func (c Comparison) OnlyFirst() []string {
	return c.DisjunctiveUnion[0]
}

// OnlySecond returns the entries unique to the second input.
func (c Comparison) OnlySecond() []string {
	return c.DisjunctiveUnion[1]
}

type set map[string]struct{}

func newSet(entries []string) set {
	s := make(set, len(entries))
	for _, entry := range entries {
		s[entry] = struct{}{}
	}
	return s
}

func (s set) has(entry string) bool {
	_, ok := s[entry]
	return ok
}

// Intersection returns the entries of first that also appear in second.
func Intersection(first, second []string) []string {
	inSecond := newSet(second)
	seen := make(set, len(first))

	intersection := []string{}
	for _, entry := range first {
		if !inSecond.has(entry) || seen.has(entry) {
			continue
		}
		seen[entry] = struct{}{}
		intersection = append(intersection, entry)
	}
	return intersection
}

// Union returns every distinct entry of first followed by the new entries of
// second. Joining the union of the letters of "tio" and "ion" gives "tion".
func Union(first, second []string) []string {
	seen := make(set, len(first)+len(second))
	union := []string{}
	for _, entries := range [][]string{first, second} {
		for _, entry := range entries {
			if seen.has(entry) {
				continue
			}
			seen[entry] = struct{}{}
			union = append(union, entry)
		}
	}
	return union
}

// DisjunctiveUnion returns the entries found only in first and those found
// only in second.
func DisjunctiveUnion(first, second []string) [2][]string {
	shared := newSet(Intersection(first, second))
	return [2][]string{without(first, shared), without(second, shared)}
}

func without(entries []string, excluded set) []string {
	seen := make(set, len(entries))
	result := []string{}
	for _, entry := range entries {
		if excluded.has(entry) || seen.has(entry) {
			continue
		}
		seen[entry] = struct{}{}
		result = append(result, entry)
	}
	return result
}

// Compare computes both the intersection and the disjunctive union.
func Compare(first, second []string) Comparison {
	return Comparison{
		Intersection:     Intersection(first, second),
		DisjunctiveUnion: DisjunctiveUnion(first, second),
	}
}

// KeyIntersection is Intersection over the keys of two maps.
func KeyIntersection(first, second Keyed) []string {
	return Intersection(first.Keys(), second.Keys())
}

// KeyUnion is Union over the keys of two maps.
func KeyUnion(first, second Keyed) []string {
	return Union(first.Keys(), second.Keys())
}

// KeyDisjunctiveUnion is DisjunctiveUnion over the keys of two maps.
func KeyDisjunctiveUnion(first, second Keyed) [2][]string {
	return DisjunctiveUnion(first.Keys(), second.Keys())
}

// KeyCompare is Compare over the keys of two maps.
func KeyCompare(first, second Keyed) Comparison {
	return Compare(first.Keys(), second.Keys())
}
