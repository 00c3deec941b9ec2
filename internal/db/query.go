package db

import (
	"fmt"
	"strings"
)

// NumericRangeClause renders an FT.SEARCH numeric range predicate for a field.
// Nil bounds are open (-inf / +inf); both bounds are inclusive.
func NumericRangeClause(field string, gte, lte *float64) string {
	minBound := "-inf"
	maxBound := "+inf"
	if gte != nil {
		minBound = fmt.Sprintf("%g", *gte)
	}
	if lte != nil {
		maxBound = fmt.Sprintf("%g", *lte)
	}
	return fmt.Sprintf("@%s:[%s %s]", field, minBound, maxBound)
}

// TextUnionClause renders a case-insensitive text containment predicate over
// multiple TEXT fields: (@f1:(term) | @f2:(term)). The term is escaped and
// lower-cased; RediSearch TEXT matching is case-insensitive by construction.
func TextUnionClause(term string, fields ...string) string {
	escaped := EscapeQuery(strings.ToLower(term))
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("@%s:(%s)", f, escaped))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// AndClauses joins predicates with the implicit FT.SEARCH AND (whitespace).
// Empty clauses are dropped; no clauses yields the match-all query.
func AndClauses(clauses ...string) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}

// EscapeQuery escapes RediSearch query syntax characters in user input.
func EscapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
