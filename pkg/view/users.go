package view

type UserListItem struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt string
}

type UsersPage struct {
	Layout
	Items     []UserListItem
	Pager     Pagination
	ListError string
	Loading   bool
	Roles     []string
}
