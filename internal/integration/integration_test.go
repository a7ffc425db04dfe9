package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/testhelpers"
	"github.com/pantrychef/backend/internal/types"
	"github.com/pantrychef/backend/models"
)

// TestPantryFlow walks the whole intake pipeline against a real PostgreSQL
// instance: sign-up, category curation, bulk intake with duplicates, audit
// trail, listing and deletion.
func TestPantryFlow(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	authService := service.NewAuthService(db, "integration-secret")
	categoryService := service.NewCategoryService(db)
	resolver := service.NewExpirationResolver(categoryService)
	ingredientService := service.NewIngredientService(db, resolver)

	admin, err := authService.Register(ctx, types.SignUpRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Admin",
		Nickname: "admin",
		Birth:    "1985-03-01",
		Gender:   "M",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).Update("is_admin", true).Error)

	user, err := authService.Register(ctx, types.SignUpRequest{
		Email:    "cook@example.com",
		Password: "password123",
		Name:     "Cook",
		Nickname: "cook",
		Birth:    "1992-11-20",
		Gender:   "F",
	})
	require.NoError(t, err)

	_, err = categoryService.Create(ctx, admin.ID, types.CategoryRequest{
		IngredientName:        "Milk",
		ParentCategory:        "dairy",
		DefaultExpirationDays: 7,
	})
	require.NoError(t, err)

	token, err := authService.Login(ctx, "cook@example.com", "password123")
	require.NoError(t, err)
	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)

	manualDate := time.Now().UTC().AddDate(0, 0, 3).Truncate(24 * time.Hour)
	result, err := ingredientService.CreateMany(ctx, claims.UserID, []service.IngredientInput{
		{Name: "Milk"},
		{Name: "Milk"},
		{Name: "Durian", ExpirationDate: &manualDate},
		{Name: "Mystery Sauce"},
	})
	require.NoError(t, err)

	require.Len(t, result.Created, 3)
	assert.Equal(t, []string{"Milk"}, result.SkippedDuplicates)
	assert.Equal(t, "3 ingredients added. Skipped duplicates: Milk.", result.Message)

	// Milk got its date from the category table.
	require.NotNil(t, result.Created[0].ExpirationDate)
	assert.Equal(t, time.Now().UTC().AddDate(0, 0, 7).Format(types.DateLayout), *result.Created[0].ExpirationDate)

	// Durian carried a manual date for an uncurated name, Mystery Sauce had
	// neither a date nor a category.
	var manualLogs []models.ManualExpirationLog
	require.NoError(t, db.Find(&manualLogs).Error)
	require.Len(t, manualLogs, 1)
	assert.Equal(t, "Durian", manualLogs[0].IngredientName)
	assert.Equal(t, models.ManualEventUnknown, manualLogs[0].EventType)
	assert.Equal(t, 3, manualLogs[0].DayOffset)

	var unrecognized []models.UnrecognizedIngredientLog
	require.NoError(t, db.Find(&unrecognized).Error)
	require.Len(t, unrecognized, 1)
	assert.Equal(t, "Mystery Sauce", unrecognized[0].IngredientName)

	listed, err := ingredientService.List(ctx, claims.UserID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Milk", listed[0].Name)

	require.NoError(t, ingredientService.Delete(ctx, claims.UserID, "Durian"))
	listed, err = ingredientService.List(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	// The database-level unique index holds even for a raw insert.
	err = db.Create(&models.Ingredient{UserID: claims.UserID, Name: "Milk"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
