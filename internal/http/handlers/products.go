package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/flash"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/middleware"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/render"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/validation"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

// ProductsHandler renders the catalog pages and drives product CRUD through
// the store slice.
type ProductsHandler struct {
	Store *store.Store
	API   *api.Client
	Flash *flash.Codec
}

func NewProductsHandler(st *store.Store, apic *api.Client, fc *flash.Codec) *ProductsHandler {
	return &ProductsHandler{Store: st, API: apic, Flash: fc}
}

// List renders /dashboard/products, page size 6, page clamped by Paginate.
func (h *ProductsHandler) List(c *gin.Context) {
	if !listErrOK(c, h.Store.Products.FetchAll(c.Request.Context())) {
		return
	}

	snap := h.Store.Products.Snapshot()
	pager := view.Paginate(len(snap.Items), pageQuery(c), productsPageSize)

	render.Page(c, http.StatusOK, "products_list", view.ProductsListPage{
		Layout:    layoutFor(c, "Products", "products"),
		Items:     mapProductList(view.PageSlice(snap.Items, pager)),
		Pager:     pager,
		ListError: snap.List.Err,
		Loading:   snap.List.Loading(),
	})
}

// Detail renders /dashboard/product/:id from the current slot.
func (h *ProductsHandler) Detail(c *gin.Context) {
	id := api.ID(c.Param("id"))
	err := h.Store.Products.FetchOne(c.Request.Context(), id)
	if err != nil {
		if apperr.IsUnauthorized(err) {
			middleware.Fail(c, err)
			return
		}
		if c.Request.Context().Err() != nil {
			c.Abort()
			return
		}
		status := http.StatusOK
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.NotFound {
			status = http.StatusNotFound
		}
		render.Page(c, status, "product_detail", view.ProductDetailPage{
			Layout:    layoutFor(c, "Product", "products"),
			NotFound:  true,
			LoadError: apperr.PublicMessage(err),
		})
		return
	}

	snap := h.Store.Products.Snapshot()
	if snap.Current == nil {
		render.Page(c, http.StatusNotFound, "product_detail", view.ProductDetailPage{
			Layout:   layoutFor(c, "Product", "products"),
			NotFound: true,
		})
		return
	}

	p := *snap.Current
	h.Store.Products.ClearCurrent() // slot yalnızca bu render için dolu kalır

	var mainName, subName string
	if p.SubCategory != nil {
		subName = p.SubCategory.Name
		if p.SubCategory.Main != nil {
			mainName = p.SubCategory.Main.Name
		}
	}
	render.Page(c, http.StatusOK, "product_detail", view.ProductDetailPage{
		Layout:   layoutFor(c, p.Name, "products"),
		Product:  mapProductItem(p),
		Desc:     p.Description,
		MainName: mainName,
		SubName:  subName,
	})
}

// New renders the empty add-product form.
func (h *ProductsHandler) New(c *gin.Context) {
	subs, err := h.subOptions(c, "")
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	render.Page(c, http.StatusOK, "product_form", view.ProductFormPage{
		Layout: layoutFor(c, "Add product", "products"),
		Subs:   subs,
	})
}

// Create validates the posted form and, only when every field passes, calls
// the backend. A form that fails here issues no network request.
func (h *ProductsHandler) Create(c *gin.Context) {
	form, apiForm, errs := h.parseProductForm(c)
	if len(errs) > 0 {
		subs, serr := h.subOptions(c, api.ID(form.SubCategoryID))
		if serr != nil {
			middleware.Fail(c, serr)
			return
		}
		render.Page(c, http.StatusBadRequest, "product_form", view.ProductFormPage{
			Layout:      layoutFor(c, "Add product", "products"),
			Form:        form,
			FieldErrors: errs,
			Subs:        subs,
		})
		return
	}

	_, err := h.Store.Products.Add(c.Request.Context(), apiForm)
	actionDone(c, h.Flash, "/dashboard/products", err, "Product created.")
}

// Edit renders the prefilled edit form.
func (h *ProductsHandler) Edit(c *gin.Context) {
	id := api.ID(c.Param("id"))
	if err := h.Store.Products.FetchOne(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	snap := h.Store.Products.Snapshot()
	if snap.Current == nil {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	p := *snap.Current
	h.Store.Products.ClearCurrent()

	var subID api.ID
	if p.SubCategory != nil {
		subID = p.SubCategory.ID
	}
	subs, err := h.subOptions(c, subID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	render.Page(c, http.StatusOK, "product_form", view.ProductFormPage{
		Layout:    layoutFor(c, "Edit product", "products"),
		Editing:   true,
		ProductID: p.ID.String(),
		Form: view.ProductForm{
			Name:          p.Name,
			Description:   p.Description,
			Price:         strconv.FormatFloat(p.Price, 'f', -1, 64),
			Stock:         strconv.Itoa(p.Stock),
			SubCategoryID: subID.String(),
		},
		Subs:         subs,
		CurrentImage: p.ImageURL,
	})
}

// Update patches an existing product. The image is optional on edit.
func (h *ProductsHandler) Update(c *gin.Context) {
	id := api.ID(c.Param("id"))
	form, apiForm, errs := h.parseProductForm(c)
	if len(errs) > 0 {
		subs, serr := h.subOptions(c, api.ID(form.SubCategoryID))
		if serr != nil {
			middleware.Fail(c, serr)
			return
		}
		render.Page(c, http.StatusBadRequest, "product_form", view.ProductFormPage{
			Layout:      layoutFor(c, "Edit product", "products"),
			Editing:     true,
			ProductID:   id.String(),
			Form:        form,
			FieldErrors: errs,
			Subs:        subs,
		})
		return
	}

	subID := apiForm.SubCategoryID
	patch := api.ProductPatch{
		Name:          &apiForm.Name,
		Description:   &apiForm.Description,
		Price:         &apiForm.Price,
		Stock:         &apiForm.Stock,
		SubCategoryID: &subID,
		Image:         apiForm.Image,
	}

	err := h.Store.Products.Update(c.Request.Context(), id, patch)
	actionDone(c, h.Flash, "/dashboard/product/"+id.String(), err, "Product updated.")
}

// Delete removes a product and returns to the list page the form came from;
// the page number gets clamped on the next render when the last item of the
// last page went away.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id := api.ID(c.Param("id"))
	err := h.Store.Products.Delete(c.Request.Context(), id)
	backTo := fmt.Sprintf("/dashboard/products?page=%d", pageQuery(c))
	actionDone(c, h.Flash, backTo, err, "Product deleted.")
}

// parseProductForm reads the multipart form and validates it; a non-empty
// error map means nothing may be sent to the backend.
func (h *ProductsHandler) parseProductForm(c *gin.Context) (view.ProductForm, api.ProductForm, map[string]string) {
	form := view.ProductForm{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		Price:         c.PostForm("price"),
		Stock:         c.PostForm("stock"),
		SubCategoryID: c.PostForm("sub_category_id"),
	}

	errs := map[string]string{}
	if form.Name == "" {
		errs["name"] = "This field is required."
	}
	if form.Description == "" {
		errs["description"] = "This field is required."
	}
	price, ok := validation.PositivePrice(form.Price)
	if !ok {
		errs["price"] = "Price must be positive."
	}
	stock, ok := validation.NonNegativeInt(form.Stock)
	if !ok {
		errs["stock"] = "Stock must be zero or a positive number."
	}
	if form.SubCategoryID == "" {
		errs["sub_category_id"] = "Please choose a sub category."
	}

	var upload *api.Upload
	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			errs["image"] = "Could not read the uploaded image."
		} else {
			upload = &api.Upload{Filename: file.Filename, Reader: f}
		}
	}

	if len(errs) > 0 {
		return form, api.ProductForm{}, errs
	}
	return form, api.ProductForm{
		Name:          form.Name,
		Description:   form.Description,
		Price:         price,
		Stock:         stock,
		SubCategoryID: api.ID(form.SubCategoryID),
		Image:         upload,
	}, nil
}

// subOptions loads the sub-category dropdown, labeled "Main / Sub".
func (h *ProductsHandler) subOptions(c *gin.Context, selected api.ID) ([]view.Option, error) {
	subs, err := h.API.ListSubCategories(c.Request.Context())
	if err != nil {
		return nil, err
	}
	out := make([]view.Option, 0, len(subs))
	for _, s := range subs {
		label := s.Name
		if s.Main != nil && s.Main.Name != "" {
			label = s.Main.Name + " / " + s.Name
		}
		out = append(out, view.Option{
			Value:    s.ID.String(),
			Label:    label,
			Selected: s.ID == selected,
		})
	}
	return out, nil
}

func mapProductList(items []api.Product) []view.ProductListItem {
	out := make([]view.ProductListItem, 0, len(items))
	for _, p := range items {
		out = append(out, mapProductItem(p))
	}
	return out
}

func mapProductItem(p api.Product) view.ProductListItem {
	category := ""
	if p.SubCategory != nil {
		category = p.SubCategory.Name
		if p.SubCategory.Main != nil && p.SubCategory.Main.Name != "" {
			category = p.SubCategory.Main.Name + " / " + p.SubCategory.Name
		}
	}
	return view.ProductListItem{
		ID:       p.ID.String(),
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Price:    p.PriceLabel(),
		Stock:    p.Stock,
		Category: category,
	}
}
