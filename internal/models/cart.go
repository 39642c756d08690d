package models

type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// CartItem holds a copy of the product taken when it was added, so later
// menu edits never change what is already in the cart.
type CartItem struct {
	Product        Product  `json:"product"`
	Quantity       int      `json:"quantity"`
	Size           Size     `json:"size"`
	Customizations []string `json:"customizations"`
}
