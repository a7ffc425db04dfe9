package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/types"
	"github.com/pantrychef/backend/models"
)

// IngredientInput is one parsed add request. A nil ExpirationDate means the
// user supplied none.
type IngredientInput struct {
	Name           string
	ExpirationDate *time.Time
}

// IngredientService owns per-user ingredient records: the duplicate guard,
// persistence, and the bulk intake loop that ties the expiration resolver and
// the audit logs together.
type IngredientService struct {
	db       *gorm.DB
	resolver *ExpirationResolver
}

func NewIngredientService(db *gorm.DB, resolver *ExpirationResolver) *IngredientService {
	return &IngredientService{db: db, resolver: resolver}
}

// Exists probes for an ingredient owned by the user. It is the cheap
// pre-check; the unique index remains the authority under races.
func (s *IngredientService) Exists(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	if err != nil {
		return false, ErrDatabase.Wrap(err)
	}
	return count > 0, nil
}

// List returns the user's ingredients in insertion order.
func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&ingredients).Error
	if err != nil {
		return nil, ErrDatabase.Wrap(err)
	}
	return ingredients, nil
}

// Names returns just the ingredient names, for the recipe prompt.
func (s *IngredientService) Names(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ingredients, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return names, nil
}

// Delete removes the named ingredient if the user owns it. Deleting a name
// the user does not own reports ErrIngredientNotFound; repeating a delete is
// not an internal error.
func (s *IngredientService) Delete(ctx context.Context, userID uuid.UUID, name string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&models.Ingredient{})
	if result.Error != nil {
		return ErrDatabase.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

// CreateMany processes a batch strictly in input order so the duplicate check
// for item N sees the inserts of items 1..N-1. A duplicate item is reported
// in the result, never raised; only storage failures of surviving items abort
// the batch.
func (s *IngredientService) CreateMany(ctx context.Context, userID uuid.UUID, inputs []IngredientInput) (*types.BulkCreateResult, error) {
	result := &types.BulkCreateResult{
		Created:           []types.IngredientSchema{},
		SkippedDuplicates: []string{},
	}

	for _, input := range inputs {
		exists, err := s.Exists(ctx, userID, input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			result.SkippedDuplicates = append(result.SkippedDuplicates, input.Name)
			continue
		}

		resolution, err := s.resolver.Resolve(ctx, input.Name, input.ExpirationDate)
		if err != nil {
			return nil, err
		}

		ingredient := models.Ingredient{
			UserID:         userID,
			Name:           input.Name,
			ExpirationDate: resolution.ExpirationDate,
		}

		// The insert and its audit record commit together; a lost audit row
		// would silently starve category-table curation.
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&ingredient).Error; err != nil {
				return err
			}
			switch resolution.Audit.Kind {
			case AuditManual:
				return tx.Create(&models.ManualExpirationLog{
					UserID:         userID,
					IngredientName: input.Name,
					DayOffset:      resolution.Audit.DayOffset,
					EventType:      resolution.Audit.EventType,
				}).Error
			case AuditUnrecognized:
				return tx.Create(&models.UnrecognizedIngredientLog{
					UserID:         userID,
					IngredientName: input.Name,
				}).Error
			}
			return nil
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent insert of the same name;
			// same outcome as if the pre-check had caught it.
			log.Printf("ingredient %q for user %s hit the unique index after passing the pre-check", input.Name, userID)
			result.SkippedDuplicates = append(result.SkippedDuplicates, input.Name)
			continue
		}
		if err != nil {
			return nil, ErrDatabase.Wrap(err)
		}

		result.Created = append(result.Created, types.NewIngredientSchema(ingredient))
	}

	result.Message = bulkMessage(len(result.Created), result.SkippedDuplicates)
	return result, nil
}

// CreateOne is a one-element batch with stricter failure behavior: a skipped
// duplicate becomes ErrIngredientConflict.
func (s *IngredientService) CreateOne(ctx context.Context, userID uuid.UUID, input IngredientInput) (*types.IngredientSchema, error) {
	result, err := s.CreateMany(ctx, userID, []IngredientInput{input})
	if err != nil {
		return nil, err
	}
	if len(result.Created) == 0 {
		return nil, ErrIngredientConflict
	}
	return &result.Created[0], nil
}

func bulkMessage(created int, skipped []string) string {
	msg := fmt.Sprintf("%d ingredients added.", created)
	if len(skipped) > 0 {
		msg += fmt.Sprintf(" Skipped duplicates: %s.", strings.Join(skipped, ", "))
	}
	return msg
}
