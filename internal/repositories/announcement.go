package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"polifund/grant-matcher/internal/models"
)

type AnnouncementRepository interface {
	Upsert(announcements []models.GrantAnnouncement) error
	FindAll() ([]models.GrantAnnouncement, error)
	FindByID(annID string) (*models.GrantAnnouncement, error)
	Count() (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Upsert implements AnnouncementRepository. Re-ingesting the same
// annId replaces the stored record; ingestion collaborators re-send
// full batches.
func (r *announcementRepository) Upsert(announcements []models.GrantAnnouncement) error {
	if len(announcements) == 0 {
		return nil
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ann_id"}},
		UpdateAll: true,
	}).Create(&announcements).Error
	if err != nil {
		return fmt.Errorf("failed to upsert announcements: %w", err)
	}

	return nil
}

// FindAll implements AnnouncementRepository. Ordered by annId so a
// match run always sees the batch in a stable order.
func (r *announcementRepository) FindAll() ([]models.GrantAnnouncement, error) {
	var announcements []models.GrantAnnouncement
	if err := r.db.Order("ann_id ASC").Find(&announcements).Error; err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	return announcements, nil
}

// FindByID implements AnnouncementRepository.
func (r *announcementRepository) FindByID(annID string) (*models.GrantAnnouncement, error) {
	var ann models.GrantAnnouncement
	if err := r.db.Where("ann_id = ?", annID).First(&ann).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("announcement not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find announcement: %w", err)
	}

	return &ann, nil
}

// Count implements AnnouncementRepository.
func (r *announcementRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.GrantAnnouncement{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	return count, nil
}
