package index

// tagSet is an insertion-ordered set of tags.
type tagSet struct {
	seen  map[string]bool
	order []string
}

func newTagSet() *tagSet {
	return &tagSet{seen: make(map[string]bool)}
}

func (s *tagSet) add(tags ...string) {
	for _, t := range tags {
		if t == "" || s.seen[t] {
			continue
		}
		s.seen[t] = true
		s.order = append(s.order, t)
	}
}

func (s *tagSet) clone() *tagSet {
	c := newTagSet()
	c.add(s.order...)
	return c
}

func (s *tagSet) list() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
