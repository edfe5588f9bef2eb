package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists stores in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&storeRecord{})
	}
	return repo
}

// storeRecord maps the store aggregate to the boutique table.
type storeRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name       string    `gorm:"column:nom;type:varchar(255);index"`
	Address    string    `gorm:"column:adresse;type:varchar(255)"`
	City       string    `gorm:"column:ville;type:varchar(255)"`
	PostalCode int32     `gorm:"column:code_postal"`
	Opinion    *int32    `gorm:"column:avis;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (storeRecord) TableName() string { return "boutique" }

// List returns all stores ordered by id.
func (r *Repository) List(ctx context.Context) ([]*domain.Store, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	return r.find(r.db.WithContext(ctx))
}

// FindByName returns stores whose name matches exactly.
func (r *Repository) FindByName(ctx context.Context, name string) ([]*domain.Store, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ports.ErrInvalidArgument
	}
	return r.find(r.db.WithContext(ctx).Where("nom = ?", name))
}

// FindByOpinionRange returns stores rated within [min, max].
func (r *Repository) FindByOpinionRange(ctx context.Context, min, max int32) ([]*domain.Store, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if min > max {
		return []*domain.Store{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("avis >= ? AND avis <= ?", min, max))
}

// GetByID fetches a store by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record storeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Save inserts a new store or updates an existing one and commits immediately.
func (r *Repository) Save(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("store is nil")
	}
	record := toRecord(store)
	if record.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return r.GetByID(ctx, record.ID)
	}
	result := r.db.WithContext(ctx).
		Model(&storeRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"nom":         record.Name,
			"adresse":     record.Address,
			"ville":       record.City,
			"code_postal": record.PostalCode,
			"avis":        record.Opinion,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

// Delete removes a store by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&storeRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) find(query *gorm.DB) ([]*domain.Store, error) {
	var records []storeRecord
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	stores := make([]*domain.Store, 0, len(records))
	for i := range records {
		stores = append(stores, records[i].toDomain())
	}
	return stores, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres store repository not configured")
	}
	return nil
}

func toRecord(store *domain.Store) storeRecord {
	clone := store.Clone()
	return storeRecord{
		ID:         clone.ID,
		Name:       clone.Name,
		Address:    clone.Address,
		City:       clone.City,
		PostalCode: clone.PostalCode,
		Opinion:    clone.Opinion,
	}
}

func (r storeRecord) toDomain() *domain.Store {
	store := &domain.Store{
		ID:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
	}
	if r.Opinion != nil {
		store.Rate(*r.Opinion)
	}
	return store
}
