package logic

import (
	"strings"
	"unicode"

	"ch/internal/domain"
	"ch/internal/ui/state"
)

// Span is a half-open byte range [Start, End) within a command name
type Span struct {
	Start int
	End   int
}

// Visible returns the entries shown in the command pane for the given state.
//
// While browsing it lists the commands of groupNames[s.SelectedGroup].
// While searching it lists every command, across all groups in groupNames
// order, whose name contains the query case-insensitively. An empty query
// matches everything.
func Visible(catalog *domain.Catalog, groupNames []string, s state.NavigationState) []domain.Entry {
	if !s.SearchActive {
		if s.SelectedGroup < 0 || s.SelectedGroup >= len(groupNames) {
			return nil
		}
		name := groupNames[s.SelectedGroup]
		group, ok := catalog.Group(name)
		if !ok {
			return nil
		}
		entries := make([]domain.Entry, 0, group.Len())
		for _, cmd := range group.CommandNames() {
			entries = append(entries, domain.Entry{Group: name, Command: cmd})
		}
		return entries
	}

	query := fold(s.SearchQuery)
	var entries []domain.Entry
	for _, name := range groupNames {
		group, ok := catalog.Group(name)
		if !ok {
			continue
		}
		for _, cmd := range group.CommandNames() {
			if Matches(cmd, query) {
				entries = append(entries, domain.Entry{Group: name, Command: cmd})
			}
		}
	}
	return entries
}

// Matches checks if a command name contains the query, ignoring case
func Matches(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(fold(name), fold(query))
}

// Resolve returns the command string behind the selected visible entry.
// A command without a string, or with a blank one, resolves to its own name.
func Resolve(catalog *domain.Catalog, groupNames []string, s state.NavigationState) (string, bool) {
	visible := Visible(catalog, groupNames, s)
	if s.CurrentSelection < 0 || s.CurrentSelection >= len(visible) {
		return "", false
	}
	entry := visible[s.CurrentSelection]
	if cmd, ok := catalog.Lookup(entry.Group, entry.Command); ok && strings.TrimSpace(cmd) != "" {
		return cmd, true
	}
	return entry.Command, true
}

// MatchSpans returns the non-overlapping ranges of name matching query,
// left to right. Ranges index the original-case name and always fall on
// rune boundaries.
func MatchSpans(name, query string) []Span {
	q := fold(query)
	if q == "" {
		return nil
	}
	lower, origAt := foldWithOffsets(name)

	var spans []Span
	cursor := 0
	for cursor+len(q) <= len(lower) {
		idx := strings.Index(lower[cursor:], q)
		if idx < 0 {
			break
		}
		start := cursor + idx
		end := start + len(q)
		spans = append(spans, Span{Start: origAt[start], End: origAt[end]})
		cursor = end
	}
	return spans
}

// fold lowercases s rune by rune
func fold(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// foldWithOffsets lowercases s and records, for every byte of the result,
// the offset of the source rune it came from. The slice has one extra
// element mapping len(result) to len(s).
func foldWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	origAt := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.ToLower(r)
		n, _ := b.WriteRune(lr)
		for k := 0; k < n; k++ {
			origAt = append(origAt, i)
		}
	}
	origAt = append(origAt, len(s))
	return b.String(), origAt
}

