package webui

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sellerdesk/sellerdesk/internal/core/domain"
)

// maxUploadBytes bounds a product image upload.
const maxUploadBytes = 10 << 20

type productView struct {
	domain.Product
	CategoryName string
	ImageURL     string
}

type productsData struct {
	Flash      *flash
	Error      string
	Products   []productView
	Categories []domain.Category
}

// productsPage is the catalog panel: the add form plus the seller's
// listings with category names resolved against the category list.
func (h *Handler) productsPage(w http.ResponseWriter, r *http.Request) {
	data := productsData{Flash: popFlash(w, r)}

	ps, err := h.catalog.Products(r.Context())
	if err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		data.Error = userMessage(err)
		h.render(w, "products.html", data)
		return
	}

	cs, err := h.catalog.Categories(r.Context())
	if err != nil {
		// The listing is still useful without category names; render
		// raw ids instead of failing the whole panel.
		slog.Warn("failed to fetch categories", "err", err)
	}
	data.Categories = cs

	for _, p := range ps {
		view := productView{Product: p, CategoryName: domain.CategoryName(cs, p.CategoryID)}
		if view.CategoryName == "" {
			view.CategoryName = "ID: " + strconv.FormatInt(p.CategoryID, 10)
		}
		if p.ImageRef != "" {
			view.ImageURL = strings.TrimRight(h.assetBase, "/") + "/" + p.ImageRef
		}
		data.Products = append(data.Products, view)
	}
	h.render(w, "products.html", data)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.addProduct"
	log := slog.With("op", op)

	form, err := parseProductForm(r)
	if err != nil {
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	if err := h.catalog.AddProduct(r.Context(), form); err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		log.Warn("add product failed", "err", err)
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Product added.")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.updateProduct"
	log := slog.With("op", op)

	id, err := productID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	if err := h.catalog.UpdateProduct(r.Context(), id, form); err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		log.Warn("update product failed", "id", id, "err", err)
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Product updated.")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

type deleteProductData struct {
	Product domain.Product
}

// deleteProductPage is the confirmation interstitial; the DELETE request
// is only ever sent from the form it renders.
func (h *Handler) deleteProductPage(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	p, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	h.render(w, "product_delete.html", deleteProductData{Product: p})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "Handler.deleteProduct"
	log := slog.With("op", op)

	id, err := productID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "invalid form submission")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	confirmed := r.PostFormValue("confirmed") == "yes"

	if err := h.catalog.DeleteProduct(r.Context(), id, confirmed); err != nil {
		if redirectOnAuthErr(w, r, err) {
			return
		}
		if !errors.Is(err, domain.ErrNotConfirmed) {
			log.Warn("delete product failed", "id", id, "err", err)
		}
		setFlash(w, "error", userMessage(err))
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Product deleted.")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func productID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseProductForm reads the multipart submission into a domain form.
// A missing file input yields a nil Image, which on update means "keep
// the stored one".
func parseProductForm(r *http.Request) (domain.ProductForm, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return domain.ProductForm{}, &domain.ValidationError{
			Field: "form", Reason: "invalid multipart submission",
		}
	}

	price, err := decimal.NewFromString(r.PostFormValue("price"))
	if err != nil {
		return domain.ProductForm{}, &domain.ValidationError{
			Field: "price", Reason: "must be a decimal number",
		}
	}

	stock, err := strconv.Atoi(r.PostFormValue("stock"))
	if err != nil {
		return domain.ProductForm{}, &domain.ValidationError{
			Field: "stock", Reason: "must be a whole number",
		}
	}

	categoryID, _ := strconv.ParseInt(r.PostFormValue("category_id"), 10, 64)

	form := domain.ProductForm{
		Name:        r.PostFormValue("product_name"),
		Price:       price,
		Description: r.PostFormValue("description"),
		Stock:       stock,
		CategoryID:  categoryID,
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		if header.Size > maxUploadBytes {
			return domain.ProductForm{}, &domain.ValidationError{
				Field: "image", Reason: "must be 10 MiB or smaller",
			}
		}
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return domain.ProductForm{}, &domain.ValidationError{
				Field: "image", Reason: "could not read upload",
			}
		}
		form.Image = &domain.ImageUpload{Filename: header.Filename, Data: data}
	} else if !errors.Is(err, http.ErrMissingFile) {
		return domain.ProductForm{}, &domain.ValidationError{
			Field: "image", Reason: "could not read upload",
		}
	}

	return form, nil
}
