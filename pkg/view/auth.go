package view

type LoginForm struct {
	Email string
}

type LoginPage struct {
	Layout
	Form        LoginForm
	FieldErrors map[string]string
	// PageError: credentials hatası gibi alana bağlanamayan mesaj
	PageError string
	ReturnTo  string
}
