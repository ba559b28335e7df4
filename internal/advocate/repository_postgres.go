package advocate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createAdvocatesTableQuery = `
		CREATE TABLE IF NOT EXISTS advocates (
			id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			city TEXT NOT NULL,
			degree TEXT NOT NULL,
			specialties TEXT[] NOT NULL DEFAULT '{}',
			years_of_experience INT NOT NULL DEFAULT 0,
			phone_number TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		)
	`
	listAdvocatesQuery = `
		SELECT id::text, first_name, last_name, city, degree, specialties, years_of_experience, phone_number
		FROM advocates
		ORDER BY id
	`
	getAdvocateByIDQuery = `
		SELECT id::text, first_name, last_name, city, degree, specialties, years_of_experience, phone_number
		FROM advocates
		WHERE id::text = $1
	`
	insertAdvocateQuery = `
		INSERT INTO advocates (first_name, last_name, city, degree, specialties, years_of_experience, phone_number)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id::text
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the advocates table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAdvocatesTableQuery); err != nil {
		return fmt.Errorf("create advocates table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Advocate, error) {
	rows, err := r.db.QueryContext(ctx, listAdvocatesQuery)
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	defer rows.Close()

	out := make([]Advocate, 0)
	for rows.Next() {
		a, err := scanAdvocate(rows)
		if err != nil {
			// skip rows that cannot be decoded rather than failing the whole list
			continue
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (Advocate, error) {
	a, err := scanAdvocate(r.db.QueryRowContext(ctx, getAdvocateByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Advocate{}, ErrNotFound
	}
	if err != nil {
		return Advocate{}, fmt.Errorf("get advocate %s: %w", id, err)
	}
	return a, nil
}

// Insert writes all advocates in one transaction; either every row lands or none does.
func (r *PostgresRepository) Insert(ctx context.Context, advocates []Advocate) ([]Advocate, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]Advocate, 0, len(advocates))
	for _, a := range advocates {
		a = Normalize(a)
		err := tx.QueryRowContext(ctx, insertAdvocateQuery,
			a.FirstName, a.LastName, a.City, a.Degree, pq.Array(a.Specialties), a.YearsOfExperience, a.PhoneNumber,
		).Scan(&a.ID)
		if err != nil {
			return nil, fmt.Errorf("insert advocate %s %s: %w", a.FirstName, a.LastName, err)
		}
		out = append(out, a)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAdvocate reads one row, coercing NULL columns to empty values.
func scanAdvocate(row rowScanner) (Advocate, error) {
	var (
		id, first, last, city, degree, phone sql.NullString
		specialties                          []string
		years                                sql.NullInt64
	)
	if err := row.Scan(&id, &first, &last, &city, &degree, pq.Array(&specialties), &years, &phone); err != nil {
		return Advocate{}, err
	}
	return Normalize(Advocate{
		ID:                id.String,
		FirstName:         first.String,
		LastName:          last.String,
		City:              city.String,
		Degree:            degree.String,
		Specialties:       specialties,
		YearsOfExperience: int(years.Int64),
		PhoneNumber:       phone.String,
	}), nil
}
