package domain

import (
	"github.com/shopspring/decimal"
)

type (
	// Product is owned by the remote store; the client holds a
	// read-through list that is refetched after every mutation.
	Product struct {
		ID          int64
		Name        string
		Price       decimal.Decimal
		Description string
		Stock       int
		CategoryID  int64
		ImageRef    string
	}

	Category struct {
		ID   int64
		Name string
	}

	// ImageUpload is a file picked in the product form.
	ImageUpload struct {
		Filename string
		Data     []byte
	}

	// ProductForm carries the scalar fields plus an optional new image.
	// A nil Image on update means "keep the stored one".
	ProductForm struct {
		Name        string
		Price       decimal.Decimal
		Description string
		Stock       int
		CategoryID  int64
		Image       *ImageUpload
	}
)

// Validate checks the form before any request is issued. requireImage is
// true for product creation, where an image is mandatory; updates may omit
// it to keep the existing one.
func (f ProductForm) Validate(requireImage bool) error {
	switch {
	case f.Name == "":
		return &ValidationError{Field: "product_name", Reason: "required"}
	case !f.Price.IsPositive():
		return &ValidationError{Field: "price", Reason: "must be greater than zero"}
	case f.Description == "":
		return &ValidationError{Field: "description", Reason: "required"}
	case f.Stock < 0:
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	case f.CategoryID <= 0:
		return &ValidationError{Field: "category_id", Reason: "required"}
	case requireImage && f.Image == nil:
		return &ValidationError{Field: "image", Reason: "required"}
	}
	return nil
}

// CategoryName resolves a category id against the fetched category list.
// Unknown ids fall back to the empty string so callers can render the raw
// id instead.
func CategoryName(cs []Category, id int64) string {
	for _, c := range cs {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
