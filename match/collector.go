package match

import "strings"

// Match - a candidate character and how similar it is to the query
type Match struct {
	Char  rune    `json:"char"`  // Char - the reference character
	Score float64 `json:"score"` // Score - 0..1, higher is closer
}

// Results - Sortable slice of Match, best first
type Results []Match

func (r Results) Swap(i, j int) {
	r[j], r[i] = r[i], r[j]
}
func (r Results) Less(i, j int) bool {
	return r[i].Score > r[j].Score
}
func (r Results) Len() int {
	return len(r)
}

// Chars - the matched characters, best first, as one string
func (r Results) Chars() string {
	var b strings.Builder
	for _, m := range r {
		b.WriteRune(m.Char)
	}
	return b.String()
}

// Collector keeps the best matches offered to it, at most limit of them, in
// descending score order. Among equal scores the one offered first ranks
// first and is the last to be evicted.
type Collector struct {
	held  Results
	limit int
}

// NewCollector returns a collector for up to limit matches. A limit of zero
// or less holds nothing.
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}
	return &Collector{held: make(Results, 0, limit), limit: limit}
}

// Offer inserts m if it ranks among the best seen so far, evicting the
// lowest held match when full. Reports whether m was kept.
func (c *Collector) Offer(m Match) bool {
	if c.limit == 0 {
		return false
	}
	if c.Full() && m.Score <= c.held[len(c.held)-1].Score {
		return false
	}

	// first position holding a strictly lower score
	pos := len(c.held)
	for pos > 0 && c.held[pos-1].Score < m.Score {
		pos--
	}
	if !c.Full() {
		c.held = append(c.held, Match{})
	}
	copy(c.held[pos+1:], c.held[pos:len(c.held)-1])
	c.held[pos] = m
	return true
}

// Full reports whether limit matches are held.
func (c *Collector) Full() bool {
	return len(c.held) >= c.limit
}

// Len - number of held matches
func (c *Collector) Len() int {
	return len(c.held)
}

// Min returns the lowest held score, or false when empty.
func (c *Collector) Min() (float64, bool) {
	if len(c.held) == 0 {
		return 0, false
	}
	return c.held[len(c.held)-1].Score, true
}

// Results returns a copy of the held matches, best first.
func (c *Collector) Results() Results {
	out := make(Results, len(c.held))
	copy(out, c.held)
	return out
}
