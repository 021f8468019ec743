// Package repository persists application records to Postgres. The process
// shares one lazily-opened pool; a write either lands whole or not at all.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iitm-tech-society/recruit-backend/internal/recruit/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const applicationColumns = `
id, email, full_name, degree_type, year, house, linkedin, github,
domains, domain_why, teams, team_why, experience, motivation,
time_commitment, interview_dates, interview_times, additional_info,
created_at, updated_at`

// Upsert keeps one record per email: a later submission replaces every
// field and refreshes updated_at while created_at stays from the first
// write. ON CONFLICT makes the find-or-create atomic, so two
// near-simultaneous submissions for the same email cannot lose an update.
func (r *Repo) Upsert(ctx context.Context, app domain.Application) (*domain.Application, error) {
	const q = `
INSERT INTO applications
  (id, email, full_name, degree_type, year, house, linkedin, github,
   domains, domain_why, teams, team_why, experience, motivation,
   time_commitment, interview_dates, interview_times, additional_info)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (email) DO UPDATE
  SET full_name = EXCLUDED.full_name,
      degree_type = EXCLUDED.degree_type,
      year = EXCLUDED.year,
      house = EXCLUDED.house,
      linkedin = EXCLUDED.linkedin,
      github = EXCLUDED.github,
      domains = EXCLUDED.domains,
      domain_why = EXCLUDED.domain_why,
      teams = EXCLUDED.teams,
      team_why = EXCLUDED.team_why,
      experience = EXCLUDED.experience,
      motivation = EXCLUDED.motivation,
      time_commitment = EXCLUDED.time_commitment,
      interview_dates = EXCLUDED.interview_dates,
      interview_times = EXCLUDED.interview_times,
      additional_info = EXCLUDED.additional_info,
      updated_at = clock_timestamp()
RETURNING ` + applicationColumns + `;`

	row := r.db.QueryRow(ctx, q, uuid.New(), app.Email, app.FullName, app.DegreeType,
		app.Year, app.House, app.LinkedIn, app.GitHub, app.Domains, app.DomainWhy,
		app.Teams, app.TeamWhy, app.Experience, app.Motivation, app.TimeCommitment,
		app.InterviewDates, app.InterviewTimes, app.AdditionalInfo)

	stored, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("upsert application: %w", err)
	}
	return stored, nil
}

// Insert always creates a new record. A duplicate email is logged, never
// rejected; no uniqueness is enforced under this policy.
func (r *Repo) Insert(ctx context.Context, app domain.Application) (*domain.Application, error) {
	var existing int
	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM applications WHERE email = $1`, app.Email).Scan(&existing); err == nil && existing > 0 {
		log.Printf("[recruit] duplicate submission email=%s existing=%d", app.Email, existing)
	}

	const q = `
INSERT INTO applications
  (id, email, full_name, degree_type, year, house, linkedin, github,
   domains, domain_why, teams, team_why, experience, motivation,
   time_commitment, interview_dates, interview_times, additional_info)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
RETURNING ` + applicationColumns + `;`

	row := r.db.QueryRow(ctx, q, uuid.New(), app.Email, app.FullName, app.DegreeType,
		app.Year, app.House, app.LinkedIn, app.GitHub, app.Domains, app.DomainWhy,
		app.Teams, app.TeamWhy, app.Experience, app.Motivation, app.TimeCommitment,
		app.InterviewDates, app.InterviewTimes, app.AdditionalInfo)

	stored, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return stored, nil
}

// GetByEmail returns the most recently updated application for an email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Application, error) {
	const q = `
SELECT ` + applicationColumns + `
FROM applications
WHERE email = $1
ORDER BY updated_at DESC
LIMIT 1;`

	row := r.db.QueryRow(ctx, q, email)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// List returns all applications, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Application, error) {
	const q = `
SELECT ` + applicationColumns + `
FROM applications
ORDER BY updated_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Application, 0, 32)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(&app.ID, &app.Email, &app.FullName, &app.DegreeType, &app.Year,
		&app.House, &app.LinkedIn, &app.GitHub, &app.Domains, &app.DomainWhy,
		&app.Teams, &app.TeamWhy, &app.Experience, &app.Motivation,
		&app.TimeCommitment, &app.InterviewDates, &app.InterviewTimes,
		&app.AdditionalInfo, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
