package service

import "github.com/shopspring/decimal"

// Input types double as JSON request bodies and validators. Validate returns
// the message for the first missing required field, checked in a fixed order;
// that order is part of the API contract, so do not reorder the checks.

type StoreInput struct {
	Name string `json:"name"`
}

func (in StoreInput) Validate() string {
	if in.Name == "" {
		return "Name is required"
	}
	return ""
}

type BillboardInput struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

func (in BillboardInput) Validate() string {
	if in.Label == "" {
		return "Label is required"
	}
	if in.ImageURL == "" {
		return "Image URL is required"
	}
	return ""
}

type CategoryInput struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

func (in CategoryInput) Validate() string {
	if in.Name == "" {
		return "Name is required"
	}
	if in.BillboardID == "" {
		return "Billboard id is required"
	}
	return ""
}

// AttributeInput covers sizes and colors; both are a name plus a value.
type AttributeInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (in AttributeInput) Validate() string {
	if in.Name == "" {
		return "Name is required"
	}
	if in.Value == "" {
		return "Value is required"
	}
	return ""
}

type ImageInput struct {
	URL string `json:"url"`
}

type ProductInput struct {
	Name       string          `json:"name"`
	Supplier   string          `json:"supplier"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	CategoryID string          `json:"categoryId"`
	SizeID     string          `json:"sizeId"`
	ColorID    string          `json:"colorId"`
	Images     []ImageInput    `json:"images"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
}

func (in ProductInput) Validate() string {
	if in.Price.IsZero() {
		return "Price is required"
	}
	if in.Quantity == 0 {
		return "Quantity is required"
	}
	if in.Name == "" {
		return "Name is required"
	}
	if in.CategoryID == "" {
		return "Category id is required"
	}
	if len(in.Images) == 0 {
		return "Images is required"
	}
	if in.SizeID == "" {
		return "Size id is required"
	}
	if in.ColorID == "" {
		return "Color id is required"
	}
	return ""
}

type OrderInput struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
	IsPaid  bool   `json:"isPaid"`
}

func (in OrderInput) Validate() string {
	if in.Phone == "" {
		return "Phone is required"
	}
	if in.Address == "" {
		return "Address is required"
	}
	return ""
}
