package view

type FaqAttachment struct {
	Name string
	URL  string
}

type FaqItem struct {
	ID          string
	Question    string
	Answer      string
	Category    string
	IsActive    bool
	CreatedAt   string
	Attachments []FaqAttachment
	Busy        bool
}

type FaqStats struct {
	Total    int
	Active   int
	Inactive int
}

type FaqsPage struct {
	Layout
	Items      []FaqItem
	Stats      FaqStats
	Pager      Pagination
	Categories []Option // filter dropdown
	Filter     string
	ListError  string
	Loading    bool
}

type FaqForm struct {
	Question string
	Answer   string
	Category string
	IsActive bool
}

type FaqFormPage struct {
	Layout
	Editing     bool
	FaqID       string
	Form        FaqForm
	FieldErrors map[string]string
	PageError   string
	Categories  []Option
	Submitting  bool
}
