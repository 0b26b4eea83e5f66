package repo

import (
	"context"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func (r *GormRepo) CreateNote(ctx context.Context, note *models.Note) error {
	note.Date = r.stamp()
	return r.DB.WithContext(ctx).Create(note).Error
}

func (r *GormRepo) ListNotes(ctx context.Context) ([]models.Note, error) {
	items := make([]models.Note, 0)
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateNote replaces the text and refreshes the timestamp.
func (r *GormRepo) UpdateNote(ctx context.Context, id uint, text string) (*models.Note, error) {
	var note models.Note
	if err := r.DB.WithContext(ctx).First(&note, id).Error; err != nil {
		return nil, err
	}

	note.Text = text
	note.Date = r.stamp()
	if err := r.DB.WithContext(ctx).Save(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *GormRepo) DeleteNote(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Note{}, id).Error
}
