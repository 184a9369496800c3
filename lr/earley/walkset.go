package earley

// walkKey identifies a completed rule over a span of input. A derivation
// walk must not revisit a key it is currently expanding.
type walkKey struct {
	rule     int
	from, to int
}

type walkset map[walkKey]struct{}

var exists = struct{}{}

func (set walkset) add(k walkKey) walkset {
	if set == nil {
		set = walkset{}
	}
	set[k] = exists
	return set
}

func (set walkset) contains(k walkKey) bool {
	if set == nil {
		return false
	}
	_, ok := set[k]
	return ok
}

func (set walkset) delete(k walkKey) {
	if set != nil {
		delete(set, k)
	}
}
