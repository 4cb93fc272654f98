package view

// Layout carries what every dashboard page needs: title, the active sidebar
// entry and the one-shot flash (toast).
type Layout struct {
	Title  string
	Active string
	Flash  *Flash
}

// Option is a generic select option for dropdowns.
type Option struct {
	Value    string
	Label    string
	Selected bool
}
