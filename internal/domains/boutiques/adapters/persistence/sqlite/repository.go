package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists stores in SQLite through database/sql.
type Repository struct {
	db *sql.DB
}

// New wires the repository and creates the schema. Caller manages DB lifecycle.
func New(db *sql.DB) (*Repository, error) {
	if db == nil {
		return nil, errors.New("sqlite store repository not configured")
	}
	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return repo, nil
}

func (r *Repository) migrate() error {
	// AUTOINCREMENT keeps deleted ids from being handed out again.
	schema := `
	CREATE TABLE IF NOT EXISTS boutique (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom TEXT NOT NULL,
		adresse TEXT NOT NULL DEFAULT '',
		ville TEXT NOT NULL DEFAULT '',
		code_postal INTEGER NOT NULL DEFAULT 0,
		avis INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_boutique_nom ON boutique(nom);
	CREATE INDEX IF NOT EXISTS idx_boutique_avis ON boutique(avis);
	`
	_, err := r.db.Exec(schema)
	return err
}

const selectColumns = `SELECT id, nom, adresse, ville, code_postal, avis FROM boutique`

// List returns all stores ordered by id.
func (r *Repository) List(ctx context.Context) ([]*domain.Store, error) {
	return r.query(ctx, selectColumns+` ORDER BY id`)
}

// FindByName returns stores whose name matches exactly.
func (r *Repository) FindByName(ctx context.Context, name string) ([]*domain.Store, error) {
	if name == "" {
		return nil, ports.ErrInvalidArgument
	}
	return r.query(ctx, selectColumns+` WHERE nom = ? ORDER BY id`, name)
}

// FindByOpinionRange returns stores rated within [min, max].
func (r *Repository) FindByOpinionRange(ctx context.Context, min, max int32) ([]*domain.Store, error) {
	if min > max {
		return []*domain.Store{}, nil
	}
	return r.query(ctx, selectColumns+` WHERE avis >= ? AND avis <= ? ORDER BY id`, min, max)
}

// GetByID fetches a store by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	store, err := scanStore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load store %d: %w", id, err)
	}
	return store, nil
}

// Save inserts a new store or updates an existing one.
func (r *Repository) Save(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	if store == nil {
		return nil, errors.New("store is nil")
	}
	opinion := nullOpinion(store.Opinion)
	if store.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO boutique (nom, adresse, ville, code_postal, avis)
			VALUES (?, ?, ?, ?, ?)
		`, store.Name, store.Address, store.City, store.PostalCode, opinion)
		if err != nil {
			return nil, fmt.Errorf("failed to insert store: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read store id: %w", err)
		}
		return r.GetByID(ctx, id)
	}
	result, err := r.db.ExecContext(ctx, `
		UPDATE boutique
		SET nom = ?, adresse = ?, ville = ?, code_postal = ?, avis = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, store.Name, store.Address, store.City, store.PostalCode, opinion, store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update store %d: %w", store.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, store.ID)
}

// Delete removes a store by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boutique WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]*domain.Store, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	stores := []*domain.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}
	return stores, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner) (*domain.Store, error) {
	var (
		store   domain.Store
		opinion sql.NullInt32
	)
	if err := row.Scan(&store.ID, &store.Name, &store.Address, &store.City, &store.PostalCode, &opinion); err != nil {
		return nil, err
	}
	if opinion.Valid {
		store.Rate(opinion.Int32)
	}
	return &store, nil
}

func nullOpinion(opinion *int32) sql.NullInt32 {
	if opinion == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *opinion, Valid: true}
}
