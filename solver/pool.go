package solver

// A pool is the list of terms currently available for combination.
// It is always sorted by decreasing value.
type pool []*Term

// position returns the index where a term of value v must be inserted
// so that the pool remains sorted, i.e the first index whose value is <= v.
func (p pool) position(v int) int {
	for i, t := range p {
		if t.value <= v {
			return i
		}
	}
	return len(p)
}

// insert inserts t at index i.
func (p *pool) insert(i int, t *Term) {
	*p = append(*p, nil)
	copy((*p)[i+1:], (*p)[i:])
	(*p)[i] = t
}

// remove removes the term at index i and returns it.
func (p *pool) remove(i int) *Term {
	t := (*p)[i]
	copy((*p)[i:], (*p)[i+1:])
	(*p)[len(*p)-1] = nil
	*p = (*p)[:len(*p)-1]
	return t
}

// sorted is true iff the pool is sorted by decreasing value.
func (p pool) sorted() bool {
	for i := 1; i < len(p); i++ {
		if p[i-1].value < p[i].value {
			return false
		}
	}
	return true
}
