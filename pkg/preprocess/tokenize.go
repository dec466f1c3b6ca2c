package preprocess

import (
	"strings"
	"unicode"

	"github.com/KevinM0ney/thesis/pkg/dataset"
)

// Tokenizer turns free text into categorical terms: lowercase, whitespace
// split, stopword and digit removal, minimum token length. The exact choices
// (stopword set, granularity) are deliberately configurable rather than
// baked in.
type Tokenizer struct {
	Stopwords  map[string]struct{}
	MinLength  int
	KeepDigits bool
}

// NewTokenizer builds a tokenizer over the given stopword list with the
// defaults used throughout the thesis corpus: minimum length 2, digits
// skipped.
func NewTokenizer(stopwords []string) *Tokenizer {
	t := &Tokenizer{Stopwords: make(map[string]struct{}, len(stopwords)), MinLength: 2}
	for _, w := range stopwords {
		t.Stopwords[strings.ToLower(w)] = struct{}{}
	}
	return t
}

// Tokens splits text into kept terms.
func (t *Tokenizer) Tokens(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) && r != '_'
	})

	var out []string
	for _, f := range fields {
		if len([]rune(f)) < t.MinLength {
			continue
		}
		if !t.KeepDigits && isDigits(f) {
			continue
		}
		if _, stop := t.Stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// ExpandColumn replaces the named free-text column with a "term" column,
// emitting one row per kept token and duplicating the remaining columns.
// This is the long-format expansion the word-level analyses work on.
func (t *Tokenizer) ExpandColumn(d *dataset.Categorical, textCol string) (*dataset.Categorical, error) {
	j, err := d.ColumnIndex(textCol)
	if err != nil {
		return nil, err
	}

	cols := make([]string, 0, len(d.Columns))
	for i, c := range d.Columns {
		if i == j {
			cols = append(cols, "term")
		} else {
			cols = append(cols, c)
		}
	}

	out := &dataset.Categorical{Columns: cols}
	for _, row := range d.Rows {
		for _, tok := range t.Tokens(row[j]) {
			next := make([]string, len(row))
			copy(next, row)
			next[j] = tok
			out.Rows = append(out.Rows, next)
		}
	}
	return out, nil
}

// ItalianStopwords is the basic Italian stopword list used for the
// newspaper-title corpus: articles, simple and articulated prepositions,
// common conjunctions, pronouns and demonstratives. Elided forms appear as
// bare stems ("dell", "all") because the tokenizer splits on apostrophes.
var ItalianStopwords = []string{
	"il", "lo", "la", "i", "gli", "le",
	"un", "uno", "una",
	"di", "a", "da", "in", "con", "su", "per", "tra", "fra",
	"del", "dello", "della", "dei", "degli", "delle", "dell",
	"al", "allo", "alla", "ai", "agli", "alle", "all",
	"dal", "dallo", "dalla", "dai", "dagli", "dalle", "dall",
	"nel", "nello", "nella", "nei", "negli", "nelle", "nell",
	"sul", "sullo", "sulla", "sui", "sugli", "sulle", "sull",
	"e", "ed", "o", "ma", "che", "se", "non", "come", "dove", "quando",
	"mi", "ti", "si", "ci", "vi", "me", "te", "lui", "lei", "noi", "voi", "loro",
	"questo", "questa", "questi", "queste", "quello", "quella", "quelli", "quelle",
	"sono", "essere", "ha", "hanno", "più", "così",
	"suo", "sua", "suoi", "sue", "mio", "mia", "miei", "mie",
}
