package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http/validation"
)

func TestPositivePrice(t *testing.T) {
	ok := []string{"1", "0.01", "29.90", " 5 ", "1e2"}
	for _, s := range ok {
		v, valid := validation.PositivePrice(s)
		assert.True(t, valid, s)
		assert.Greater(t, v, 0.0, s)
	}

	bad := []string{"", "0", "-1", "-0.01", "abc", "NaN", "Inf", "-Inf", "1,5"}
	for _, s := range bad {
		_, valid := validation.PositivePrice(s)
		assert.False(t, valid, s)
	}
}

func TestNonNegativeInt(t *testing.T) {
	v, ok := validation.NonNegativeInt("0")
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = validation.NonNegativeInt(" 12 ")
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	for _, s := range []string{"", "-1", "1.5", "abc"} {
		_, ok := validation.NonNegativeInt(s)
		assert.False(t, ok, s)
	}
}

func TestRating(t *testing.T) {
	for i, s := range []string{"1", "2", "3", "4", "5"} {
		v, ok := validation.Rating(s)
		assert.True(t, ok)
		assert.Equal(t, i+1, v)
	}

	for _, s := range []string{"0", "6", "", "five", "-3"} {
		_, ok := validation.Rating(s)
		assert.False(t, ok, s)
	}
}

type loginShape struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding") // gin uses the binding tag

	err := v.Struct(loginShape{Email: "not-an-email"})
	assert.Error(t, err)

	errs := validation.FromBindError(err, &loginShape{})
	assert.Equal(t, "Enter a valid email address.", errs["email"])
	assert.Equal(t, "This field is required.", errs["password"])
}

func TestFromBindErrorNonValidation(t *testing.T) {
	errs := validation.FromBindError(assert.AnError, &loginShape{})
	assert.Equal(t, "Invalid form data.", errs["_"])
}
