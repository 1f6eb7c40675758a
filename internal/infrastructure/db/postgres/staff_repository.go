package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salonhq/salon-system/internal/core/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

type staffRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	Role      string    `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (staffRecord) TableName() string { return "staff" }

func (r *StaffRepository) Create(ctx context.Context, s *domain.StaffMember) (*domain.StaffMember, error) {
	rec := staffRecord{
		Name:     s.Name,
		Role:     s.Role,
		IsActive: true,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert staff: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	var rec staffRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("find staff: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *StaffRepository) FindActiveByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	var rec staffRecord
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, fmt.Errorf("find active staff: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *StaffRepository) ListActive(ctx context.Context) ([]domain.StaffMember, error) {
	var recs []staffRecord
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	members := make([]domain.StaffMember, 0, len(recs))
	for _, rec := range recs {
		members = append(members, *rec.toDomain())
	}
	return members, nil
}

func (r *StaffRepository) Update(ctx context.Context, s *domain.StaffMember) error {
	res := r.db.WithContext(ctx).
		Model(&staffRecord{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name": s.Name,
			"role": s.Role,
		})
	if res.Error != nil {
		return fmt.Errorf("update staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

// Deactivate is the soft delete: the row survives so reports keep counting it.
func (r *StaffRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&staffRecord{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

func (rec *staffRecord) toDomain() *domain.StaffMember {
	return &domain.StaffMember{
		ID:        rec.ID,
		Name:      rec.Name,
		Role:      rec.Role,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
