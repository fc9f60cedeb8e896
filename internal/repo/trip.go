// Package repo contains all database access logic for the trip suggestion
// service. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for recorded trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by best-available date descending
	// (visit_date, falling back to the approximate year).
	List(ctx context.Context) ([]domain.Trip, error)

	// ListPaged returns one page of trips plus the total row count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// ListByCountry returns all trips recorded for the given ISO 3166-1
	// alpha-2 code, same order as List. The code must be uppercase.
	ListByCountry(ctx context.Context, code string) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, country_name, country_code, name, visit_date, end_date,
	approx_month, approx_year, notes, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (country_name, country_code, name, visit_date, end_date,
		                   approx_month, approx_year, notes)
		VALUES (@country_name, @country_code, @name, @visit_date, @end_date,
		        @approx_month, @approx_year, @notes)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips, most recent first. Trips with only approximate
// evidence sort by their approximate year, after any exactly-dated trip of
// the same year.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY COALESCE(visit_date, make_date(approx_year, COALESCE(NULLIF(approx_month, 0), 1), 1)) DESC,
		         created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListByCountry returns all trips for one country code, same order as List.
func (r *pgTripRepo) ListByCountry(ctx context.Context, code string) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE country_code = @code
		ORDER BY COALESCE(visit_date, make_date(approx_year, COALESCE(NULLIF(approx_month, 0), 1), 1)) DESC,
		         created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"code": code})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByCountry: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByCountry: %w", err)
	}
	return trips, nil
}

// ListPaged returns one page of trips plus the total count, same order as List.
func (r *pgTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips`

	var total int64
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY COALESCE(visit_date, make_date(approx_year, COALESCE(NULLIF(approx_month, 0), 1), 1)) DESC,
		         created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	return trips, total, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET country_name = @country_name,
		    country_code = @country_code,
		    name         = @name,
		    visit_date   = @visit_date,
		    end_date     = @end_date,
		    approx_month = @approx_month,
		    approx_year  = @approx_year,
		    notes        = @notes,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := tripArgs(trip)
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs maps the mutable trip fields to NamedArgs shared by Create and
// Update. Zero approx values are stored as NULL so the schema's range checks
// only apply to real evidence.
func tripArgs(trip domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"country_name": trip.CountryName,
		"country_code": nullIfEmpty(trip.CountryCode),
		"name":         trip.Name,
		"visit_date":   trip.VisitDate, // nil becomes NULL
		"end_date":     trip.EndDate,
		"approx_month": nullIfZero(trip.ApproxMonth),
		"approx_year":  nullIfZero(trip.ApproxYear),
		"notes":        trip.Notes,
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// collectTrips drains rows into a slice using scanTrip.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID, nullable date, and nullable int conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t           domain.Trip
		id          pgtype.UUID
		countryCode pgtype.Text
		visitDate   pgtype.Date
		endDate     pgtype.Date
		approxMonth pgtype.Int4
		approxYear  pgtype.Int4
	)

	err := s.Scan(&id, &t.CountryName, &countryCode, &t.Name, &visitDate, &endDate,
		&approxMonth, &approxYear, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if countryCode.Valid {
		t.CountryCode = countryCode.String
	}
	if visitDate.Valid {
		v := visitDate.Time
		t.VisitDate = &v
	}
	if endDate.Valid {
		e := endDate.Time
		t.EndDate = &e
	}
	if approxMonth.Valid {
		t.ApproxMonth = int(approxMonth.Int32)
	}
	if approxYear.Valid {
		t.ApproxYear = int(approxYear.Int32)
	}

	return t, nil
}
