// Package eco enriches opening names with their ECO classification and main
// line, and links them to the Lichess opening explorer.
package eco

import (
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"
)

const lichessOpeningURL = "https://lichess.org/opening/"

// Entry is one opening of the ECO book.
type Entry struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Moves string `json:"moves"`
}

// Book indexes ECO entries by lower-cased title.
type Book struct {
	byTitle map[string]Entry
}

// NewBook indexes the ECO book bundled with the chess library.
func NewBook() *Book {
	book := opening.NewBookECO()
	all := book.Possible(chess.NewGame().Moves())

	entries := make([]Entry, 0, len(all))
	for _, o := range all {
		entries = append(entries, Entry{Code: o.Code(), Title: o.Title(), Moves: o.PGN()})
	}
	return NewBookFromEntries(entries)
}

// NewBookFromEntries indexes the given entries. When several lines share a
// title the shortest one is kept as the main line.
func NewBookFromEntries(entries []Entry) *Book {
	b := &Book{byTitle: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		key := normalize(e.Title)
		if prev, ok := b.byTitle[key]; ok && len(prev.Moves) <= len(e.Moves) {
			continue
		}
		b.byTitle[key] = e
	}
	return b
}

// Len returns the number of distinct titles in the book.
func (b *Book) Len() int {
	return len(b.byTitle)
}

// Lookup finds the entry for an opening name. Variations missing from the
// book fall back to their family, the part of the name before the first ':'.
func (b *Book) Lookup(name string) (Entry, bool) {
	if e, ok := b.byTitle[normalize(name)]; ok {
		return e, true
	}
	if family, _, found := strings.Cut(name, ":"); found {
		if e, ok := b.byTitle[normalize(family)]; ok {
			return e, true
		}
	}
	return Entry{}, false
}

// LichessURL links an opening name to its Lichess explorer page.
func LichessURL(name string) string {
	return lichessOpeningURL + strings.ReplaceAll(name, " ", "_")
}

func normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
