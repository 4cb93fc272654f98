package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID accepts both JSON strings and numbers; the backend is not consistent
// about which one it returns per resource.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// MainCategory / SubCategory: two-level product taxonomy ("Man" -> "Shirts").
type MainCategory struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

type SubCategory struct {
	ID   ID            `json:"id"`
	Name string        `json:"name"`
	Main *MainCategory `json:"main"`
}

type Product struct {
	ID          ID           `json:"id"`
	AltID       ID           `json:"_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	Price       float64      `json:"price"`
	Stock       int          `json:"stock"`
	SubCategory *SubCategory `json:"subCategory"`
}

type User struct {
	ID        ID     `json:"id"`
	AltID     ID     `json:"_id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type Review struct {
	ID         ID     `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"isApproved"`
	CreatedAt  string `json:"createdAt"`
	UserID     ID     `json:"userId"`
	User       *User  `json:"user"`
}

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Faq struct {
	ID          ID           `json:"id"`
	Question    string       `json:"question"`
	Answer      string       `json:"answer"`
	Category    string       `json:"category"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   string       `json:"createdAt"`
	Attachments []Attachment `json:"attachments"`
}

// FaqCategories are the categories the FAQ form offers.
var FaqCategories = []string{"ALL", "SHIPPING", "ORDERING", "RETURNS", "SUPPORT"}

// UserRoles the role dropdown offers.
var UserRoles = []string{"user", "admin"}

// FullName joins the user's name fields for display.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Email
	}
}

// PriceLabel formats a product price for display, e.g. "$12.50".
func (p Product) PriceLabel() string {
	return "$" + strconv.FormatFloat(p.Price, 'f', 2, 64)
}
