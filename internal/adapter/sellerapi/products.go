package sellerapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

func (c *Client) Products(
	ctx context.Context, token string, storeID int64,
) ([]domain.Product, error) {
	const op = "sellerapi.Products"

	query := url.Values{"store_id": {strconv.FormatInt(storeID, 10)}}
	req, err := c.newRequest(ctx, http.MethodGet, "/product?"+query.Encode(), token, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp struct {
		Product []productJSON `json:"product"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(resp.Product))
	for _, p := range resp.Product {
		ps = append(ps, p.toDomain())
	}
	return ps, nil
}

func (c *Client) Categories(
	ctx context.Context, token string,
) ([]domain.Category, error) {
	const op = "sellerapi.Categories"

	req, err := c.newRequest(ctx, http.MethodGet, "/category", token, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp struct {
		Categories []categoryJSON `json:"Categories"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, 0, len(resp.Categories))
	for _, cat := range resp.Categories {
		cs = append(cs, domain.Category{ID: cat.ID, Name: cat.CategoryName})
	}
	return cs, nil
}

func (c *Client) AddProduct(
	ctx context.Context, token string, storeID int64, form domain.ProductForm,
) error {
	const op = "sellerapi.AddProduct"

	req, err := c.newMultipartRequest(
		ctx, http.MethodPost, "/product/add", token, storeID, form,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) UpdateProduct(
	ctx context.Context, token string, storeID, productID int64, form domain.ProductForm,
) error {
	const op = "sellerapi.UpdateProduct"

	path := "/product/" + strconv.FormatInt(productID, 10)
	req, err := c.newMultipartRequest(ctx, http.MethodPut, path, token, storeID, form)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) DeleteProduct(
	ctx context.Context, token string, productID int64,
) error {
	const op = "sellerapi.DeleteProduct"

	path := "/product/" + strconv.FormatInt(productID, 10)
	req, err := c.newRequest(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// newMultipartRequest encodes the product form the way the backend's
// upload middleware expects: scalar fields plus an optional "image" file
// part. When the form carries no image the part is omitted entirely so
// the server keeps the stored one (missing field means "no change").
func (c *Client) newMultipartRequest(
	ctx context.Context, method, path, token string,
	storeID int64, form domain.ProductForm,
) (*http.Request, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"product_name": form.Name,
		"description":  form.Description,
		"price":        form.Price.String(),
		"stock":        strconv.Itoa(form.Stock),
		"category_id":  strconv.FormatInt(form.CategoryID, 10),
		"store_id":     strconv.FormatInt(storeID, 10),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if form.Image != nil {
		part, err := mw.CreateFormFile("image", form.Image.Filename)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(form.Image.Data); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, token, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}
