package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salonhq/salon-system/internal/core/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type serviceRecord struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Category        *string
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (serviceRecord) TableName() string { return "services" }

func (r *CatalogRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	rec := serviceRecord{
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		IsActive:        true,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	var rec serviceRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CatalogRepository) FindActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	var rec serviceRecord
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find active service: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CatalogRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var recs []serviceRecord
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := make([]domain.Service, 0, len(recs))
	for _, rec := range recs {
		services = append(services, *rec.toDomain())
	}
	return services, nil
}

func (r *CatalogRepository) Update(ctx context.Context, s *domain.Service) error {
	res := r.db.WithContext(ctx).
		Model(&serviceRecord{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":             s.Name,
			"duration_minutes": s.DurationMinutes,
			"category":         s.Category,
		})
	if res.Error != nil {
		return fmt.Errorf("update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

// Deactivate is the soft delete: past bookings keep a valid reference.
func (r *CatalogRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&serviceRecord{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (rec *serviceRecord) toDomain() *domain.Service {
	return &domain.Service{
		ID:              rec.ID,
		Name:            rec.Name,
		DurationMinutes: rec.DurationMinutes,
		Category:        rec.Category,
		IsActive:        rec.IsActive,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
