package view

type ReviewItem struct {
	ID         string
	Rating     int
	Comment    string
	Author     string
	CreatedAt  string
	IsApproved bool
	Busy       bool // approval/delete in flight for this row
}

type ReviewStats struct {
	Total     int
	Approved  int
	Pending   int
	AvgRating string
}

type ReviewsPage struct {
	Layout
	Items       []ReviewItem
	Stats       ReviewStats
	Pager       Pagination
	ListError   string
	SubmitError string
	Loading     bool
}
