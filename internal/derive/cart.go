package derive

import (
	"sort"
	"strings"

	"brew_co/internal/models"

	"github.com/shopspring/decimal"
)

// MergeKey identifies cart lines that should be combined: same product,
// same size and the same customizations regardless of their order.
func MergeKey(productID string, size models.Size, customizations []string) string {
	sorted := append([]string(nil), customizations...)
	sort.Strings(sorted)
	return productID + ":" + string(size) + ":" + strings.Join(sorted, "|")
}

func LineKey(item models.CartItem) string {
	return MergeKey(item.Product.ID, item.Size, item.Customizations)
}

func LineTotal(item models.CartItem) decimal.Decimal {
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// CartTotal sums unit price times quantity over every line. Lines with a
// non-positive quantity or price contribute nothing.
func CartTotal(cart []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		if item.Quantity <= 0 || item.Product.Price.IsNegative() {
			continue
		}
		total = total.Add(LineTotal(item))
	}
	return total
}
