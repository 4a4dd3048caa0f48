package solver

import "sort"

// termSorter is a structure to facilitate the sorting of terms
// according to their respective values, from the biggest to the smallest.
type termSorter []*Term

func (ts termSorter) Len() int           { return len(ts) }
func (ts termSorter) Less(i, j int) bool { return ts[i].value > ts[j].value }
func (ts termSorter) Swap(i, j int)      { ts[i], ts[j] = ts[j], ts[i] }

// sortTerms sorts the terms by decreasing value.
// Terms with the same value keep their relative order.
func sortTerms(terms []*Term) {
	sort.Stable(termSorter(terms))
}
