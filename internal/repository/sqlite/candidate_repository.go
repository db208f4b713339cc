package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-hr-assistant/internal/domain"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// Init creates the candidates table if it does not exist. Safe to call on
// every startup; no migrations beyond this.
func (r *candidateRepository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS candidates (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			name            TEXT NOT NULL,
			email           TEXT,
			phone           TEXT,
			summary         TEXT,
			skills_json     TEXT,
			experience_json TEXT,
			education_json  TEXT,
			linkedin_json   TEXT
		)`)
	if err != nil {
		return fmt.Errorf("init candidates table: %w", err)
	}
	return nil
}

func (r *candidateRepository) Save(ctx context.Context, p *domain.CandidateProfile) error {
	skills, err := marshalList(p.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	experience, err := marshalList(p.Experience)
	if err != nil {
		return fmt.Errorf("encode experience: %w", err)
	}
	education, err := marshalList(p.Education)
	if err != nil {
		return fmt.Errorf("encode education: %w", err)
	}
	linkedin, err := json.Marshal(p.LinkedinProfile)
	if err != nil {
		return fmt.Errorf("encode linkedin: %w", err)
	}

	if p.ID > 0 {
		// Full overwrite of every column, never a merge.
		query := `
			UPDATE candidates
			SET name=?, email=?, phone=?, summary=?, skills_json=?, experience_json=?, education_json=?, linkedin_json=?
			WHERE id=?`
		_, err := r.db.ExecContext(ctx, query,
			p.Name, p.Email, p.Phone, p.Summary, skills, experience, education, string(linkedin), p.ID)
		if err != nil {
			return fmt.Errorf("update candidate %d: %w", p.ID, err)
		}
		return nil
	}

	query := `
		INSERT INTO candidates (name, email, phone, summary, skills_json, experience_json, education_json, linkedin_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Email, p.Phone, p.Summary, skills, experience, education, string(linkedin))
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert candidate: last id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *candidateRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM candidates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *candidateRepository) GetByName(ctx context.Context, name string) (*domain.CandidateProfile, error) {
	query := `
		SELECT id, name, email, phone, summary, skills_json, experience_json, education_json, linkedin_json
		FROM candidates WHERE name=? LIMIT 1`

	var p domain.CandidateProfile
	var email, phone, summary, skillsJSON, experienceJSON, educationJSON, linkedinJSON sql.NullString

	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&p.ID, &p.Name, &email, &phone, &summary,
		&skillsJSON, &experienceJSON, &educationJSON, &linkedinJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate %q: %w", name, err)
	}

	p.Email = email.String
	p.Phone = phone.String
	p.Summary = summary.String
	// Corrupted JSON columns never fail a read: they degrade to zero values.
	p.Skills = loadStringList(skillsJSON.String)
	p.Experience = loadList[domain.Experience](experienceJSON.String)
	p.Education = loadList[domain.Education](educationJSON.String)
	p.LinkedinProfile = loadString(linkedinJSON.String)
	return &p, nil
}

func (r *candidateRepository) DeleteByName(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE name=?`, name); err != nil {
		return fmt.Errorf("delete candidate %q: %w", name, err)
	}
	return nil
}

func (r *candidateRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete candidate %d: %w", id, err)
	}
	return nil
}

// marshalList encodes a slice column, storing nil slices as empty JSON arrays
// so reads round-trip cleanly.
func marshalList[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func loadList[T any](raw string) []T {
	if raw == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// loadStringList tolerates legacy rows where a skills column holds a JSON
// string instead of an array: the string is comma-split into a list.
func loadStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		out := []string{}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return []string{}
}

func loadString(raw string) string {
	if raw == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return ""
	}
	return s
}
