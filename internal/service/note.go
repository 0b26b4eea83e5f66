package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
	"github.com/RusenAli99/say-nileti-im/internal/repo"
)

type NoteService struct {
	Repo *repo.GormRepo
}

func (s *NoteService) AddNote(ctx context.Context, text string) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text required", ErrValidation)
	}

	note := models.Note{Text: text}
	if err := s.Repo.CreateNote(ctx, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) GetNotes(ctx context.Context) ([]models.Note, error) {
	return s.Repo.ListNotes(ctx)
}

func (s *NoteService) UpdateNote(ctx context.Context, id uint, text string) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text required", ErrValidation)
	}

	note, err := s.Repo.UpdateNote(ctx, id, text)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return note, err
}

func (s *NoteService) DeleteNote(ctx context.Context, id uint) error {
	return s.Repo.DeleteNote(ctx, id)
}
