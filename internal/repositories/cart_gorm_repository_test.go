package repositories_test

import (
	"fmt"
	"testing"

	"tienda/internal/apperrors"
	"tienda/internal/models"
	"tienda/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartRepo(t *testing.T) *repositories.GORMCartRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}
	return repositories.NewGORMCartRepository(db)
}

func TestGORMCartRepository_SaveOverwritesItems(t *testing.T) {
	repo := setupCartRepo(t)

	cart := &models.Cart{Items: []models.CartItem{
		{ProductID: "prod-a", Quantity: 1},
		{ProductID: "prod-b", Quantity: 2},
	}}
	assert.NoError(t, repo.Create(cart))

	// Full overwrite: nothing from the old sequence survives.
	cart.Items = []models.CartItem{{ProductID: "prod-c", Quantity: 7}}
	assert.NoError(t, repo.Save(cart))

	stored, err := repo.GetByID(cart.ID)
	assert.NoError(t, err)
	if assert.Len(t, stored.Items, 1) {
		assert.Equal(t, "prod-c", stored.Items[0].ProductID)
		assert.Equal(t, 7, stored.Items[0].Quantity)
	}
}

func TestGORMCartRepository_PreservesInsertionOrder(t *testing.T) {
	repo := setupCartRepo(t)

	cart := &models.Cart{}
	assert.NoError(t, repo.Create(cart))

	cart.Items = []models.CartItem{
		{ProductID: "prod-z", Quantity: 1},
		{ProductID: "prod-a", Quantity: 1},
		{ProductID: "prod-m", Quantity: 1},
	}
	assert.NoError(t, repo.Save(cart))

	stored, err := repo.GetByID(cart.ID)
	assert.NoError(t, err)
	if assert.Len(t, stored.Items, 3) {
		assert.Equal(t, "prod-z", stored.Items[0].ProductID)
		assert.Equal(t, "prod-a", stored.Items[1].ProductID)
		assert.Equal(t, "prod-m", stored.Items[2].ProductID)
	}
}

func TestGORMCartRepository_SaveEmptySequence(t *testing.T) {
	repo := setupCartRepo(t)

	cart := &models.Cart{Items: []models.CartItem{{ProductID: "prod-a", Quantity: 3}}}
	assert.NoError(t, repo.Create(cart))

	cart.Items = []models.CartItem{}
	assert.NoError(t, repo.Save(cart))

	stored, err := repo.GetByID(cart.ID)
	assert.NoError(t, err)
	assert.Empty(t, stored.Items)
}

func TestGORMCartRepository_MissingCart(t *testing.T) {
	repo := setupCartRepo(t)

	_, err := repo.GetByID("no-such-cart")
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Save(&models.Cart{ID: "no-such-cart"})
	assert.True(t, apperrors.IsNotFound(err))
}
