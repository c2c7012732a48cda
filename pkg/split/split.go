// Package split implements the Splitter component of spec.md §4.1: locating
// the boundary between the SQL portion of a query and its trailing
// visualization portion, without attempting to parse either side.
//
// The reference implementation (original_source/src/parser/splitter.rs) uses
// a tree-sitter grammar for the whole query to find this boundary. Lacking
// that grammar here, the scanner instead walks the query respecting SQL
// string/identifier quoting and comment syntax, so a "VISUALISE AS" that
// happens to appear inside a string literal or a comment is never mistaken
// for the real boundary.
package split

import (
	"strings"

	"github.com/vvsql/vvsql/pkg/vzerr"
)

// Result is the outcome of splitting one query.
type Result struct {
	// SQL is the data sub-language portion to hand to a tableio.Adapter.
	// It may have had a "SELECT * FROM <source>" injected onto the end of
	// it when the visualization portion used VISUALISE FROM (SPEC_FULL.md
	// §11.1).
	SQL string

	// Viz is everything from the first top-level VISUALISE/VISUALIZE
	// keyword onwards, verbatim. Empty if the query has no viz portion.
	Viz string
}

// Split locates the SQL/visualization boundary in query and performs the
// VISUALISE FROM injection described in SPEC_FULL.md §11.1. One trailing
// ";" is dropped from the SQL portion when a viz portion follows. An empty or
// all-whitespace query yields an empty Result with no error (spec.md §4.1).
func Split(query string) (Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Result{}, nil
	}

	idx := firstTopLevelKeyword(q, 0)
	if idx < 0 {
		return Result{SQL: q}, nil
	}

	sqlPart := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(q[:idx]), ";"))
	vizPart := strings.TrimSpace(q[idx:])

	sqlPart, err := injectFromSource(sqlPart, vizPart)
	if err != nil {
		return Result{}, err
	}

	return Result{SQL: sqlPart, Viz: vizPart}, nil
}

// injectFromSource scans vizPart for the first VISUALISE FROM <source>
// statement and, if found, injects "SELECT * FROM <source>" into sqlPart,
// mirroring original_source/src/parser/splitter.rs's inject behavior.
func injectFromSource(sqlPart, vizPart string) (string, error) {
	starts := topLevelKeywordPositions(vizPart)
	for i, start := range starts {
		end := len(vizPart)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		stmt := vizPart[start:end]

		source, ok := extractFromSource(stmt)
		if !ok {
			continue
		}

		if strings.TrimSpace(sqlPart) == "" {
			return "SELECT * FROM " + source, nil
		}

		trimmed := strings.TrimSpace(sqlPart)
		if !strings.HasPrefix(strings.ToUpper(trimmed), "WITH") {
			return "", vzerr.Split(
				"VISUALISE FROM can only be used standalone or after WITH statements; " +
					"for other SQL statements, use 'SELECT ... VISUALISE AS' instead")
		}
		return trimmed + " SELECT * FROM " + source, nil
	}

	return sqlPart, nil
}

// extractFromSource reports whether stmt (one "VISUALISE[/VISUALIZE] ..."
// statement) begins with a FROM clause, and if so returns the source text
// verbatim (including surrounding quotes for a file-path source).
func extractFromSource(stmt string) (string, bool) {
	i := skipKeyword(stmt, 0) // skip VISUALISE/VISUALIZE
	i = skipSpaces(stmt, i)

	if !hasWordAt(stmt, i, "FROM") {
		return "", false
	}
	i += len("FROM")
	i = skipSpaces(stmt, i)

	if i >= len(stmt) {
		return "", false
	}

	if stmt[i] == '\'' || stmt[i] == '"' {
		end := findQuoteEnd(stmt, i, stmt[i])
		return stmt[i:end], true
	}

	start := i
	for i < len(stmt) && isIdentByte(stmt[i]) {
		i++
	}
	if i == start {
		return "", false
	}
	return stmt[start:i], true
}

func skipKeyword(s string, i int) int {
	if hasWordAt(s, i, "VISUALISE") {
		return i + len("VISUALISE")
	}
	if hasWordAt(s, i, "VISUALIZE") {
		return i + len("VISUALIZE")
	}
	return i
}

func skipSpaces(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func isIdentByte(b byte) bool {
	return b == '_' || b == '.' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// hasWordAt reports whether s has the case-insensitive word kw starting at
// byte offset i, bounded on both sides by non-word bytes.
func hasWordAt(s string, i int, kw string) bool {
	if i < 0 || i+len(kw) > len(s) {
		return false
	}
	if !strings.EqualFold(s[i:i+len(kw)], kw) {
		return false
	}
	if i > 0 && isWordByte(s[i-1]) {
		return false
	}
	if i+len(kw) < len(s) && isWordByte(s[i+len(kw)]) {
		return false
	}
	return true
}

// findQuoteEnd returns the index just past the closing quote matching the
// opening quote at s[start], honoring doubled-quote escaping.
func findQuoteEnd(s string, start int, quote byte) int {
	i := start + 1
	for i < len(s) {
		if s[i] == quote {
			if i+1 < len(s) && s[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(s)
}

// firstTopLevelKeyword returns the byte offset of the first VISUALISE or
// VISUALIZE keyword in s at or after from that is not inside a quoted
// string, quoted identifier, line comment, or block comment. Returns -1 if
// none is found.
func firstTopLevelKeyword(s string, from int) int {
	positions := topLevelKeywordPositions(s)
	for _, p := range positions {
		if p >= from {
			return p
		}
	}
	return -1
}

// topLevelKeywordPositions returns the offsets of every top-level
// VISUALISE/VISUALIZE keyword occurrence in s, in order.
func topLevelKeywordPositions(s string) []int {
	var positions []int
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\'':
			i = findQuoteEnd(s, i, '\'')
		case s[i] == '"':
			i = findQuoteEnd(s, i, '"')
		case i+1 < len(s) && s[i] == '-' && s[i+1] == '-':
			i = skipLineComment(s, i)
		case i+1 < len(s) && s[i] == '/' && s[i+1] == '*':
			i = skipBlockComment(s, i)
		case hasWordAt(s, i, "VISUALISE"):
			positions = append(positions, i)
			i += len("VISUALISE")
		case hasWordAt(s, i, "VISUALIZE"):
			positions = append(positions, i)
			i += len("VISUALIZE")
		default:
			i++
		}
	}
	return positions
}

func skipLineComment(s string, i int) int {
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(s string, i int) int {
	i += 2
	for i+1 < len(s) {
		if s[i] == '*' && s[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(s)
}
