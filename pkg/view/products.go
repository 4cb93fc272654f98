package view

type ProductListItem struct {
	ID       string
	Name     string
	ImageURL string
	Price    string
	Stock    int
	Category string // "Main / Sub"
}

type ProductsListPage struct {
	Layout
	Items      []ProductListItem
	Pager      Pagination
	ListError  string
	Loading    bool
	DeletingID string
}

type ProductDetailPage struct {
	Layout
	Product   ProductListItem
	Desc      string
	MainName  string
	SubName   string
	NotFound  bool
	LoadError string
}

// ProductForm mirrors the add/edit form fields as submitted strings;
// numeric parsing happens in the handler before any API call.
type ProductForm struct {
	Name          string
	Description   string
	Price         string
	Stock         string
	SubCategoryID string
}

type ProductFormPage struct {
	Layout
	Editing     bool
	ProductID   string
	Form        ProductForm
	FieldErrors map[string]string
	PageError   string
	Mains       []Option
	Subs        []Option
	Submitting  bool
	// CurrentImage: edit formunda mevcut görseli göstermek için
	CurrentImage string
}
