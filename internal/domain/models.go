package domain

// Category groups questions by topic (Science, Art, ...).
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a trivia question as served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"` // expected 1-5, not validated here
}

// NewQuestion carries the fields needed to create a question; the store assigns the ID.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// AllCategories is the quiz scope that selects from every category.
const AllCategories = 0

// IDSet holds previously served question IDs.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set. A nil set contains nothing.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}
