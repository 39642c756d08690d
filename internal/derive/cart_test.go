package derive

import (
	"testing"

	"brew_co/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func product(id, price string) models.Product {
	return models.Product{ID: id, Name: "p" + id, Price: decimal.RequireFromString(price)}
}

func TestMergeKey_IgnoresCustomizationOrder(t *testing.T) {
	a := MergeKey("1", models.SizeMedium, []string{"Oat Milk", "Extra Shot"})
	b := MergeKey("1", models.SizeMedium, []string{"Extra Shot", "Oat Milk"})
	assert.Equal(t, a, b)
	assert.Equal(t, "1:M:Extra Shot|Oat Milk", a)

	assert.NotEqual(t, a, MergeKey("1", models.SizeLarge, []string{"Oat Milk", "Extra Shot"}))
	assert.NotEqual(t, a, MergeKey("2", models.SizeMedium, []string{"Oat Milk", "Extra Shot"}))
	assert.NotEqual(t, MergeKey("1", models.SizeMedium, []string{"Oat Milk"}), MergeKey("1", models.SizeMedium, []string{"Oat Milk", "Oat Milk"}))
}

func TestMergeKey_DoesNotReorderInput(t *testing.T) {
	custom := []string{"b", "a"}
	MergeKey("1", models.SizeSmall, custom)
	assert.Equal(t, []string{"b", "a"}, custom)
}

func TestCartTotal(t *testing.T) {
	cart := []models.CartItem{
		{Product: product("1", "4.50"), Quantity: 2, Size: models.SizeMedium},
		{Product: product("2", "3.80"), Quantity: 1, Size: models.SizeSmall},
	}
	assert.True(t, decimal.RequireFromString("12.80").Equal(CartTotal(cart)))
	assert.True(t, CartTotal(cart).Equal(CartTotal(cart)))
	assert.True(t, decimal.Zero.Equal(CartTotal(nil)))
}

func TestCartTotal_NeverNegative(t *testing.T) {
	cart := []models.CartItem{
		{Product: product("1", "-2.00"), Quantity: 3},
		{Product: product("2", "1.00"), Quantity: 0},
	}
	assert.True(t, decimal.Zero.Equal(CartTotal(cart)))
}
