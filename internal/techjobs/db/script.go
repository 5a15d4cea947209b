package db

import (
	"strings"
)

// SplitStatements breaks a SQL script into statements on ';'. Line comments
// starting with "--" are dropped. Semicolons inside quoted strings are kept.
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
		quote      rune
	)

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if quote == 0 && strings.HasPrefix(trimmed, "--") {
			continue
		}
		for _, ch := range line {
			switch {
			case quote != 0:
				if ch == quote {
					quote = 0
				}
				current.WriteRune(ch)
			case ch == '\'' || ch == '"' || ch == '`':
				quote = ch
				current.WriteRune(ch)
			case ch == ';':
				flush()
			default:
				current.WriteRune(ch)
			}
		}
		current.WriteRune('\n')
	}
	flush()

	return statements
}
