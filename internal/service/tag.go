package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/pkordes/worktracker/internal/domain"
	"github.com/pkordes/worktracker/internal/repo"
)

// TagService implements business logic for Tag operations.
type TagService struct {
	uow repo.UnitOfWork
}

// NewTagService constructs a TagService backed by the provided UnitOfWork.
func NewTagService(uow repo.UnitOfWork) *TagService {
	return &TagService{uow: uow}
}

// List returns all tags ordered by name.
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.uow.Tags().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// GetOrCreate returns the tag named name, creating it if needed.
//
// The lookup and the insert are not atomic. If another caller inserts the
// same name in between, the unique index rejects our insert with
// domain.ErrConflict and the winner's row is loaded instead.
func (s *TagService) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	if err := validateTagName(name); err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.GetOrCreate: %w", err)
	}

	tags := s.uow.Tags()
	tag, err := tags.GetByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Tag{}, fmt.Errorf("service.TagService.GetOrCreate: %w", err)
	}

	tag, err = tags.Create(ctx, name)
	if errors.Is(err, domain.ErrConflict) {
		tag, err = tags.GetByName(ctx, name)
	}
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.TagService.GetOrCreate: %w", err)
	}
	return tag, nil
}

// Delete removes a tag and detaches it from every record. Records are kept.
// Reports false, with no error, when the tag does not exist.
func (s *TagService) Delete(ctx context.Context, id int64) (bool, error) {
	err := s.uow.Execute(ctx, func(tx repo.UnitOfWork) error {
		return tx.Tags().Delete(ctx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("service.TagService.Delete: %w", err)
	}
	return true, nil
}

// validateTagName enforces the 1 to 100 character rule. Names are otherwise
// taken verbatim: no trimming, no case folding.
func validateTagName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return fmt.Errorf("%w: tag name is required", domain.ErrValidation)
	}
	if n > domain.MaxTagNameLength {
		return fmt.Errorf("%w: tag name must be at most %d characters", domain.ErrValidation, domain.MaxTagNameLength)
	}
	return nil
}
