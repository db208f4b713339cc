// Package normalize cleans raw form input into canonical profile fragments.
// Everything here is a pure function: malformed input degrades to empty
// values, never to an error.
package normalize

import (
	"strings"

	"go-hr-assistant/internal/domain"
)

// Trim strips surrounding whitespace. Whitespace-only input becomes "".
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ParseSkillList splits free text on commas, semicolons and newlines, trims
// every piece, drops empties and deduplicates case-insensitively keeping the
// first-seen casing and order.
// "Go, go, Rust;  \nPython" -> ["Go", "Rust", "Python"].
func ParseSkillList(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		s := Trim(p)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// CleanExperience trims every field of every row and drops rows whose fields
// are all blank after trimming. A row with any single non-blank field is kept.
func CleanExperience(rows []domain.Experience) []domain.Experience {
	out := make([]domain.Experience, 0, len(rows))
	for _, r := range rows {
		e := domain.Experience{
			Company:     Trim(r.Company),
			Title:       Trim(r.Title),
			Duration:    Trim(r.Duration),
			Description: Trim(r.Description),
		}
		if e.Company != "" || e.Title != "" || e.Duration != "" || e.Description != "" {
			out = append(out, e)
		}
	}
	return out
}

// CleanEducation is CleanExperience for education rows.
func CleanEducation(rows []domain.Education) []domain.Education {
	out := make([]domain.Education, 0, len(rows))
	for _, r := range rows {
		e := domain.Education{
			Degree:      Trim(r.Degree),
			Institution: Trim(r.Institution),
			Year:        Trim(r.Year),
		}
		if e.Degree != "" || e.Institution != "" || e.Year != "" {
			out = append(out, e)
		}
	}
	return out
}
