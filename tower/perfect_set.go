package tower

// PerfectSet holds block indices placed perfectly during the current run in insertion order
type PerfectSet struct {
	order   []int
	members map[int]struct{}
}

// Add records index, duplicates are ignored
func (s *PerfectSet) Add(index int) {
	if s.members == nil {
		s.members = make(map[int]struct{})
	}
	if _, ok := s.members[index]; ok {
		return
	}
	s.members[index] = struct{}{}
	s.order = append(s.order, index)
}

func (s *PerfectSet) Contains(index int) bool {
	_, ok := s.members[index]
	return ok
}

func (s *PerfectSet) Len() int {
	return len(s.order)
}

// Indices returns a copy in insertion order
func (s *PerfectSet) Indices() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

func (s *PerfectSet) Reset() {
	s.order = s.order[:0]
	clear(s.members)
}
