package dictionary

// Kind identifies one of the word lists a Dictionary holds.
type Kind int

const (
	Main Kind = iota
	Surname
	Quantifier
	Suffix
	Preposition
	StopWord

	numKinds
)

// Kinds lists every dictionary kind in load order.
var Kinds = []Kind{Main, Surname, Quantifier, Suffix, Preposition, StopWord}

// Policy decides what a missing or unreadable base list does to loading.
type Policy int

const (
	// BestEffort logs the failure and continues with an empty dictionary.
	BestEffort Policy = iota
	// Critical aborts loading.
	Critical
)

func (p Policy) String() string {
	if p == Critical {
		return "critical"
	}
	return "best-effort"
}

type kindInfo struct {
	name   string
	file   string
	policy Policy
	extKey string
}

var kinds = [numKinds]kindInfo{
	Main:        {"main", "main.dic", BestEffort, ExtDictKey},
	Surname:     {"surname", "surname.dic", Critical, ""},
	Quantifier:  {"quantifier", "quantifier.dic", BestEffort, ""},
	Suffix:      {"suffix", "suffix.dic", Critical, ""},
	Preposition: {"preposition", "preposition.dic", Critical, ""},
	StopWord:    {"stop word", "stop_word.dic", BestEffort, ExtStopWordsKey},
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}

// BaseFile returns the name of the bundled base list for k.
func (k Kind) BaseFile() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].file
}

// Policy returns how a missing base list for k is handled.
func (k Kind) Policy() Policy {
	if !k.valid() {
		return BestEffort
	}
	return kinds[k].policy
}

// ExtKey returns the configuration key naming extension lists merged into k,
// or "" when k takes no extensions.
func (k Kind) ExtKey() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].extKey
}
