package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/telehealth/patient-service/internal/model"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrEmailTaken      = errors.New("patient with this email already exists")
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation. The patients.email UNIQUE constraint is the authoritative
// uniqueness check; any pre-insert lookup is advisory only.
const uniqueViolation = "23505"

// Repository provides methods to interact with the patients table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new patient repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// InitSchema creates the patients table if it does not exist yet.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS patients (
		    id BIGSERIAL PRIMARY KEY,
		    name TEXT NOT NULL,
		    email TEXT NOT NULL UNIQUE,
		    phone TEXT NOT NULL
		);
    `

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether err is a violation of the email
// unique constraint.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// CreatePatient inserts a new patient into the database and returns its ID.
// A duplicate email is reported as ErrEmailTaken, even when two concurrent
// inserts race: the constraint decides, not the caller's prior read.
func (r *Repository) CreatePatient(ctx context.Context, p model.Patient) (int64, error) {
	query := `
		INSERT INTO patients (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	var id int64
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Email, p.Phone).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrEmailTaken
		}

		return 0, fmt.Errorf("failed to create patient: %w", err)
	}

	return id, nil
}

// GetPatientByID retrieves a patient by its ID.
func (r *Repository) GetPatientByID(ctx context.Context, id int64) (model.Patient, error) {
	query := `
		SELECT id, name, email, phone
		FROM patients
		WHERE id = $1;
    `

	var p model.Patient
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Email, &p.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Patient{}, ErrPatientNotFound
		}

		return model.Patient{}, fmt.Errorf("failed to get patient: %w", err)
	}

	return p, nil
}

// GetPatientByEmail retrieves a patient by its email address.
func (r *Repository) GetPatientByEmail(ctx context.Context, email string) (model.Patient, error) {
	query := `
		SELECT id, name, email, phone
		FROM patients
		WHERE email = $1;
    `

	var p model.Patient
	err := r.db.QueryRowContext(ctx, query, email).Scan(&p.ID, &p.Name, &p.Email, &p.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Patient{}, ErrPatientNotFound
		}

		return model.Patient{}, fmt.Errorf("failed to get patient by email: %w", err)
	}

	return p, nil
}

// UpdatePatient writes all mutable fields of p in one statement. An email
// conflict with another record surfaces as ErrEmailTaken via the unique
// constraint.
func (r *Repository) UpdatePatient(ctx context.Context, p model.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, email = $2, phone = $3
		WHERE id = $4;
    `

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Email, p.Phone, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}

		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// DeletePatient removes a patient by its ID. Deletion is immediate and
// permanent; there is no soft delete.
func (r *Repository) DeletePatient(ctx context.Context, id int64) error {
	query := `
		DELETE FROM patients
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// ListPatients retrieves one page of patients ordered by insertion order.
func (r *Repository) ListPatients(ctx context.Context, limit, offset int) ([]model.Patient, error) {
	query := `
		SELECT id, name, email, phone
		FROM patients
		ORDER BY id
		LIMIT $1 OFFSET $2;
    `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := make([]model.Patient, 0, limit)
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone); err != nil {
			return nil, err
		}

		patients = append(patients, p)
	}

	return patients, rows.Err()
}

// CountPatients returns the total number of stored patients.
func (r *Repository) CountPatients(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM patients;
    `

	var total int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}

	return total, nil
}
