// Package dialect rewrites SQL statements written in SQLite surface syntax
// into the MySQL equivalent. Translation covers a known, finite set of
// syntactic differences; statements without a matching pattern pass through
// unchanged. Translate is pure and total: every input produces an output and
// there is no failure mode.
package dialect

import (
	"regexp"
	"strings"
)

// Dialect name constants.
const (
	SQLite = "sqlite"
	MySQL  = "mysql"
)

// NoopQuery replaces PRAGMA statements. MySQL accepts it and it returns
// exactly one row, which keeps pragma-issuing call sites working.
const NoopQuery = "SELECT 1"

// rule is one keyword rewrite. Patterns are case-insensitive and anchored on
// word boundaries so they never match inside longer identifiers.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules lists the keyword rewrites in application order. The patterns do not
// overlap, so each applies independently of the others.
var rules = []rule{
	{regexp.MustCompile(`(?i)\bAUTOINCREMENT\b`), "AUTO_INCREMENT"},
	{regexp.MustCompile(`(?i)\bINTEGER\s+PRIMARY\s+KEY\b`), "INT PRIMARY KEY"},
	{regexp.MustCompile(`(?i)\bREAL\b`), "DOUBLE"},
}

// stringLiteral matches a single-quoted SQL string literal, including
// embedded doubled quotes ('it''s'). Literal content is never rewritten.
var stringLiteral = regexp.MustCompile(`'(?:[^']|'')*'`)

// pragmaStmt matches statements beginning with the SQLite PRAGMA keyword.
var pragmaStmt = regexp.MustCompile(`(?i)^\s*PRAGMA\b`)

// Translate rewrites stmt from SQLite syntax to MySQL syntax. PRAGMA
// statements are replaced wholesale by NoopQuery; for everything else the
// keyword rules apply to the parts of the statement outside single-quoted
// string literals.
func Translate(stmt string) string {
	if pragmaStmt.MatchString(stmt) {
		return NoopQuery
	}

	var b strings.Builder
	last := 0
	for _, loc := range stringLiteral.FindAllStringIndex(stmt, -1) {
		b.WriteString(applyRules(stmt[last:loc[0]]))
		b.WriteString(stmt[loc[0]:loc[1]])
		last = loc[1]
	}
	if last == 0 {
		return applyRules(stmt)
	}
	b.WriteString(applyRules(stmt[last:]))
	return b.String()
}

// applyRules runs every keyword rule over a literal-free statement segment.
func applyRules(segment string) string {
	for _, r := range rules {
		segment = r.pattern.ReplaceAllString(segment, r.replacement)
	}
	return segment
}
