package normalize_test

import (
	"testing"

	"go-hr-assistant/internal/domain"
	"go-hr-assistant/internal/normalize"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillList(t *testing.T) {
	t.Run("splits on comma semicolon and newline", func(t *testing.T) {
		got := normalize.ParseSkillList("Go, go, Rust;  \nPython")
		assert.Equal(t, []string{"Go", "Rust", "Python"}, got)
	})

	t.Run("dedup is case-insensitive and keeps first casing", func(t *testing.T) {
		got := normalize.ParseSkillList("Go, go, RUST, Rust")
		assert.Equal(t, []string{"Go", "RUST"}, got)
	})

	t.Run("drops empty pieces", func(t *testing.T) {
		got := normalize.ParseSkillList("SQL,, sql")
		assert.Equal(t, []string{"SQL"}, got)
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := normalize.ParseSkillList("")
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got = normalize.ParseSkillList(" \n ; , ")
		assert.Empty(t, got)
	})
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "", normalize.Trim("   \t\n"))
	assert.Equal(t, "a b", normalize.Trim("  a b  "))
}

func TestCleanExperience(t *testing.T) {
	rows := []domain.Experience{
		{Company: " Acme ", Title: " Engineer ", Duration: "2020-2022", Description: ""},
		{Company: "  ", Title: "", Duration: " ", Description: "\t"},
		{Company: "", Title: "", Duration: "", Description: " kept because of me "},
	}

	got := normalize.CleanExperience(rows)

	assert.Len(t, got, 2)
	assert.Equal(t, domain.Experience{Company: "Acme", Title: "Engineer", Duration: "2020-2022"}, got[0])
	assert.Equal(t, "kept because of me", got[1].Description)
}

func TestCleanEducation(t *testing.T) {
	rows := []domain.Education{
		{Degree: "BSc", Institution: " MIT ", Year: " 2019 "},
		{Degree: " ", Institution: "", Year: ""},
	}

	got := normalize.CleanEducation(rows)

	assert.Equal(t, []domain.Education{{Degree: "BSc", Institution: "MIT", Year: "2019"}}, got)
}

func TestCleanRowsKeepRule(t *testing.T) {
	// A row is dropped iff every field is blank after trimming.
	kept := normalize.CleanExperience([]domain.Experience{{Company: "Acme"}})
	assert.Len(t, kept, 1)

	dropped := normalize.CleanExperience([]domain.Experience{{}})
	assert.Empty(t, dropped)
}
