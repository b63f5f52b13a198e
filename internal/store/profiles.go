package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerlift-engine/internal/domain"
)

var ErrNotFound = errors.New("not found")

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '',
  experience TEXT NOT NULL DEFAULT '',
  career_goal TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_profiles_email
ON profiles(email);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

func GetProfile(ctx context.Context, db *sql.DB, id string) (domain.Profile, error) {
	var p domain.Profile
	err := db.QueryRowContext(ctx, `
SELECT id, name, email, skills, experience, career_goal
FROM profiles
WHERE id = ?;`, id).Scan(&p.ID, &p.Name, &p.Email, &p.Skills, &p.Experience, &p.CareerGoal)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func UpsertProfile(ctx context.Context, db *sql.DB, p domain.Profile) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO profiles(id, name, email, skills, experience, career_goal, updated_at)
VALUES(?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  email = excluded.email,
  skills = excluded.skills,
  experience = excluded.experience,
  career_goal = excluded.career_goal,
  updated_at = excluded.updated_at;`,
		p.ID, p.Name, p.Email, p.Skills, p.Experience, p.CareerGoal,
		time.Now().UTC().Format(time.RFC3339))
	return err
}
