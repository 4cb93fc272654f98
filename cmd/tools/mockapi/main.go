// mockapi is a development stand-in for the dashboard backend. It keeps
// everything in memory and deliberately mimics the real API's quirks: mixed
// response envelopes, numeric vs string ids and message-only update bodies.
//
// Usage:
//
//	go run ./cmd/tools/mockapi -addr :3000
//	API_BASE_URL=http://localhost:3000 go run ./cmd/web
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SubCategory *subCat `json:"subCategory"`
}

type mainCat struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type subCat struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Main *mainCat `json:"main"`
}

type user struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type review struct {
	ID         int    `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"isApproved"`
	CreatedAt  string `json:"createdAt"`
	User       *user  `json:"user"`
}

type faq struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

type state struct {
	mu       sync.Mutex
	products []product
	users    []user
	reviews  []review
	faqs     []faq
	nextID   int
	token    string
}

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	email := flag.String("email", "admin@example.com", "accepted login email")
	password := flag.String("password", "admin123", "accepted login password")
	flag.Parse()

	st := seed()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.POST("/login", func(c *gin.Context) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Email != *email || in.Password != *password {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": st.token})
	})

	authed := r.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+st.token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
		}
	})

	// Products come wrapped in {product: [...]} like the real thing.
	authed.GET("/product", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"product": st.products})
	})

	authed.GET("/product/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		for _, p := range st.products {
			if p.ID == c.Param("id") {
				c.JSON(http.StatusOK, gin.H{"product": p})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
	})

	authed.POST("/dashboard/pro", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()

		price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
		stock, _ := strconv.Atoi(c.PostForm("stock"))
		if price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be positive."})
			return
		}

		p := product{
			ID:          uuid.NewString(),
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Price:       price,
			Stock:       stock,
			SubCategory: st.findSub(c.PostForm("subCategoryId")),
		}
		if file, err := c.FormFile("image"); err == nil {
			p.ImageURL = "https://cdn.example.com/uploads/" + file.Filename
		}
		st.products = append([]product{p}, st.products...)
		c.JSON(http.StatusCreated, gin.H{"product": p})
	})

	authed.PATCH("/dashboard/pro/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.products {
			if st.products[i].ID != c.Param("id") {
				continue
			}
			if v := c.PostForm("name"); v != "" {
				st.products[i].Name = v
			}
			if v := c.PostForm("description"); v != "" {
				st.products[i].Description = v
			}
			if v := c.PostForm("price"); v != "" {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					st.products[i].Price = f
				}
			}
			if v := c.PostForm("stock"); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					st.products[i].Stock = n
				}
			}
			if v := c.PostForm("subCategoryId"); v != "" {
				st.products[i].SubCategory = st.findSub(v)
			}
			// Gerçek API update'te objeyi geri vermiyor.
			c.JSON(http.StatusOK, gin.H{"message": "Product updated."})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
	})

	authed.DELETE("/dashboard/pro/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.products {
			if st.products[i].ID == c.Param("id") {
				st.products = append(st.products[:i], st.products[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
	})

	authed.GET("/dashboard/main", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": []mainCat{{ID: 1, Name: "Man"}, {ID: 2, Name: "Woman"}}})
	})

	authed.GET("/dashboard/sub", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": []subCat{
			{ID: 11, Name: "Shirts", Main: &mainCat{ID: 1, Name: "Man"}},
			{ID: 12, Name: "Shoes", Main: &mainCat{ID: 1, Name: "Man"}},
			{ID: 21, Name: "Dresses", Main: &mainCat{ID: 2, Name: "Woman"}},
		}})
	})

	// Users come as {users: [...]}.
	authed.GET("/dashboard/users", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"users": st.users})
	})

	authed.PATCH("/dashboard/users/:id", func(c *gin.Context) {
		var in struct {
			Role string `json:"role"`
		}
		_ = c.ShouldBindJSON(&in)

		st.mu.Lock()
		defer st.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		for i := range st.users {
			if st.users[i].ID == id {
				st.users[i].Role = in.Role
				// Sadece id+role echo: client fallback'ini tetikler.
				c.JSON(http.StatusOK, gin.H{"id": id, "role": in.Role})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	})

	authed.DELETE("/dashboard/users/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		for i := range st.users {
			if st.users[i].ID == id {
				st.users = append(st.users[:i], st.users[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"id": id})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	})

	// Reviews: listed under {data: [...]}, created via the public endpoint.
	authed.GET("/dashboard/webReview", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"data": st.reviews})
	})

	r.POST("/webSit", func(c *gin.Context) {
		var in struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Rating < 1 || in.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5."})
			return
		}

		st.mu.Lock()
		defer st.mu.Unlock()
		st.nextID++
		rv := review{
			ID:        st.nextID,
			Rating:    in.Rating,
			Comment:   in.Comment,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		st.reviews = append([]review{rv}, st.reviews...)
		c.JSON(http.StatusCreated, gin.H{"data": rv})
	})

	authed.PUT("/dashboard/webReview/:id", func(c *gin.Context) {
		var in struct {
			Rating     *int    `json:"rating"`
			Comment    *string `json:"comment"`
			IsApproved *bool   `json:"isApproved"`
		}
		_ = c.ShouldBindJSON(&in)

		st.mu.Lock()
		defer st.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		for i := range st.reviews {
			if st.reviews[i].ID != id {
				continue
			}
			if in.Rating != nil {
				st.reviews[i].Rating = *in.Rating
			}
			if in.Comment != nil {
				st.reviews[i].Comment = *in.Comment
			}
			if in.IsApproved != nil {
				st.reviews[i].IsApproved = *in.IsApproved
			}
			c.JSON(http.StatusOK, gin.H{"data": st.reviews[i]})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found."})
	})

	authed.DELETE("/dashboard/webReview/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		id, _ := strconv.Atoi(c.Param("id"))
		for i := range st.reviews {
			if st.reviews[i].ID == id {
				st.reviews = append(st.reviews[:i], st.reviews[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"id": id})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found."})
	})

	// FAQs: bare array, string ids.
	authed.GET("/dashboard/faq", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		c.JSON(http.StatusOK, st.faqs)
	})

	authed.POST("/dashboard/faq", func(c *gin.Context) {
		var in faq
		if err := c.ShouldBindJSON(&in); err != nil || in.Question == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Question is required."})
			return
		}

		st.mu.Lock()
		defer st.mu.Unlock()
		in.ID = uuid.NewString()
		in.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		st.faqs = append([]faq{in}, st.faqs...)
		c.JSON(http.StatusCreated, in)
	})

	authed.PUT("/dashboard/faq/:id", func(c *gin.Context) {
		var in struct {
			Question *string `json:"question"`
			Answer   *string `json:"answer"`
			Category *string `json:"category"`
			IsActive *bool   `json:"isActive"`
		}
		_ = c.ShouldBindJSON(&in)

		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.faqs {
			if st.faqs[i].ID != c.Param("id") {
				continue
			}
			if in.Question != nil && *in.Question != "" {
				st.faqs[i].Question = *in.Question
			}
			if in.Answer != nil && *in.Answer != "" {
				st.faqs[i].Answer = *in.Answer
			}
			if in.Category != nil && *in.Category != "" {
				st.faqs[i].Category = *in.Category
			}
			if in.IsActive != nil {
				st.faqs[i].IsActive = *in.IsActive
			}
			c.JSON(http.StatusOK, gin.H{"message": "FAQ updated."})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "FAQ not found."})
	})

	authed.DELETE("/dashboard/faq/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		for i := range st.faqs {
			if st.faqs[i].ID == c.Param("id") {
				st.faqs = append(st.faqs[:i], st.faqs[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "FAQ not found."})
	})

	fmt.Printf("mockapi listening on %s (login: %s / %s)\n", *addr, *email, *password)
	log.Fatal(r.Run(*addr))
}

func (s *state) findSub(id string) *subCat {
	n, _ := strconv.Atoi(id)
	subs := []subCat{
		{ID: 11, Name: "Shirts", Main: &mainCat{ID: 1, Name: "Man"}},
		{ID: 12, Name: "Shoes", Main: &mainCat{ID: 1, Name: "Man"}},
		{ID: 21, Name: "Dresses", Main: &mainCat{ID: 2, Name: "Woman"}},
	}
	for i := range subs {
		if subs[i].ID == n {
			return &subs[i]
		}
	}
	return nil
}

func seed() *state {
	now := time.Now().UTC()
	man := &mainCat{ID: 1, Name: "Man"}

	return &state{
		token:  uuid.NewString(),
		nextID: 100,
		products: []product{
			{
				ID: uuid.NewString(), Name: "Classic Shirt", Description: "Plain cotton shirt.",
				Price: 29.90, Stock: 12, SubCategory: &subCat{ID: 11, Name: "Shirts", Main: man},
			},
			{
				ID: uuid.NewString(), Name: "Leather Shoes", Description: "Handmade leather shoes.",
				Price: 119.00, Stock: 4, SubCategory: &subCat{ID: 12, Name: "Shoes", Main: man},
			},
		},
		users: []user{
			{ID: 1, FirstName: "Wajd", LastName: "H.", Email: "admin@example.com", Role: "admin", CreatedAt: now.AddDate(0, -3, 0).Format(time.RFC3339)},
			{ID: 2, FirstName: "Lina", LastName: "K.", Email: "lina@example.com", Role: "user", CreatedAt: now.AddDate(0, -1, -5).Format(time.RFC3339)},
			{ID: 3, FirstName: "Omar", LastName: "S.", Email: "omar@example.com", Role: "user", CreatedAt: now.AddDate(0, 0, -2).Format(time.RFC3339)},
		},
		reviews: []review{
			{ID: 100, Rating: 5, Comment: "Great store!", IsApproved: true, CreatedAt: now.AddDate(0, 0, -7).Format(time.RFC3339),
				User: &user{ID: 2, FirstName: "Lina", LastName: "K.", Email: "lina@example.com"}},
			{ID: 99, Rating: 3, Comment: "Shipping took a while.", CreatedAt: now.AddDate(0, 0, -1).Format(time.RFC3339)},
		},
		faqs: []faq{
			{ID: uuid.NewString(), Question: "How long does shipping take?", Answer: "3-5 business days.", Category: "SHIPPING", IsActive: true, CreatedAt: now.AddDate(0, 0, -10).Format(time.RFC3339)},
			{ID: uuid.NewString(), Question: "Can I return an item?", Answer: "Within 14 days.", Category: "RETURNS", IsActive: false, CreatedAt: now.AddDate(0, 0, -9).Format(time.RFC3339)},
		},
	}
}
