package service

import (
	"context"
	"fmt"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
	"github.com/sellerdesk/sellerdesk/internal/core/port"
)

var _ port.Cataloger = (*CatalogService)(nil)

// CatalogService manages the seller's product listings. Mutations are
// fire-and-forget: the caller refetches the whole collection afterwards,
// there is no optimistic local merge.
type CatalogService struct {
	api      port.SellerAPI
	sessions port.SessionStore
}

func NewCatalog(api port.SellerAPI, sessions port.SessionStore) CatalogService {
	return CatalogService{api: api, sessions: sessions}
}

func (s CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogService.Products"

	sess, err := requireSession(s.sessions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.api.Products(ctx, sess.Token, sess.Store.StoreID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// Product finds one listing in the refetched collection. The remote API
// exposes no single-product read, so this goes through the list.
func (s CatalogService) Product(ctx context.Context, productID int64) (domain.Product, error) {
	const op = "CatalogService.Product"

	ps, err := s.Products(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range ps {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf(
		"%s: product %d: %w", op, productID, domain.ErrUnexpectedResponse,
	)
}

func (s CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogService.Categories"

	sess, err := requireSession(s.sessions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.api.Categories(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

// AddProduct validates the full form, image included, and posts it as one
// multipart submission.
func (s CatalogService) AddProduct(ctx context.Context, form domain.ProductForm) error {
	const op = "CatalogService.AddProduct"

	if err := form.Validate(true); err != nil {
		return err
	}

	sess, err := requireSession(s.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.api.AddProduct(ctx, sess.Token, sess.Store.StoreID, form); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateProduct accepts a form without a new image; the image part is then
// omitted from the submission and the server keeps the stored one.
func (s CatalogService) UpdateProduct(
	ctx context.Context, productID int64, form domain.ProductForm,
) error {
	const op = "CatalogService.UpdateProduct"

	if err := form.Validate(false); err != nil {
		return err
	}

	sess, err := requireSession(s.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.api.UpdateProduct(ctx, sess.Token, sess.Store.StoreID, productID, form)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteProduct refuses to act without explicit confirmation; a declined
// confirmation sends no request at all.
func (s CatalogService) DeleteProduct(
	ctx context.Context, productID int64, confirmed bool,
) error {
	const op = "CatalogService.DeleteProduct"

	if !confirmed {
		return domain.ErrNotConfirmed
	}

	sess, err := requireSession(s.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.api.DeleteProduct(ctx, sess.Token, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
