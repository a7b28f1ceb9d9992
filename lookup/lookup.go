// Package lookup answers free-text questions against rows parsed by tinycsv.
//
// Matching is deliberately simple: the query is split into lowercase terms,
// common filler words are dropped, and a row scores one point for every
// distinct term found inside any of its fields.
package lookup

import (
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/oleg578/tinycsv"
)

// ErrNoHeader is returned by Load when the input contains no rows at all.
var ErrNoHeader = errors.New("lookup: missing header row")

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "by": {}, "for": {}, "from": {},
	"how": {}, "in": {}, "is": {}, "me": {}, "of": {}, "on": {}, "or": {},
	"show": {}, "tell": {}, "the": {}, "to": {}, "what": {}, "which": {},
	"who": {}, "with": {},
}

// Match is a row that matched a query.
type Match struct {
	Header []string
	Row    []string
	// Index is the zero-based position of the row after the header.
	Index int
	Score int
}

// String renders the row as "column: value" pairs.
func (m Match) String() string {
	parts := make([]string, 0, len(m.Row))
	for i, v := range m.Row {
		name := ""
		if i < len(m.Header) {
			name = m.Header[i]
		}
		if name == "" {
			name = "column " + strconv.Itoa(i+1)
		}
		parts = append(parts, name+": "+v)
	}
	return strings.Join(parts, "; ")
}

// Index holds rows prepared for case-insensitive search.
type Index struct {
	header []string
	rows   [][]string
	folded [][]string
}

// New builds an Index over rows described by header.
func New(header []string, rows [][]string) *Index {
	idx := &Index{header: header, rows: rows, folded: make([][]string, len(rows))}
	for i, row := range rows {
		f := make([]string, len(row))
		for j, v := range row {
			f[j] = strings.ToLower(v)
		}
		idx.folded[i] = f
	}
	return idx
}

// Load reads every row from r, treating the first one as the header.
func Load(r *tinycsv.Reader) (*Index, error) {
	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return New(header, rows), nil
}

// Len returns the number of indexed rows.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// Header returns the column names.
func (idx *Index) Header() []string {
	return idx.header
}

// Search returns rows matching at least one query term, best first. Rows with
// equal scores keep their input order. A positive limit caps the result size.
func (idx *Index) Search(query string, limit int) []Match {
	terms := Terms(query)
	if len(terms) == 0 {
		return nil
	}

	var matches []Match
	for i, row := range idx.folded {
		score := 0
		for _, term := range terms {
			if containsTerm(row, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, Match{Header: idx.header, Row: idx.rows[i], Index: i, Score: score})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Terms splits query into distinct lowercase search terms.
func Terms(query string) []string {
	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]struct{}, len(words))
	var terms []string
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
	}
	return terms
}

func containsTerm(row []string, term string) bool {
	for _, v := range row {
		if strings.Contains(v, term) {
			return true
		}
	}
	return false
}
