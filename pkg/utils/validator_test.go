package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type yearForm struct {
	Year int `validate:"required,movieyear"`
}

func TestValidateStruct_MovieYear(t *testing.T) {
	currentYear := time.Now().Year()

	t.Run("accepts years in range", func(t *testing.T) {
		for _, year := range []int{1900, 1994, currentYear} {
			errs := ValidateStruct(&yearForm{Year: year})
			assert.Empty(t, errs, "year %d", year)
		}
	})

	t.Run("rejects years out of range", func(t *testing.T) {
		for _, year := range []int{1899, 1000, currentYear + 1} {
			errs := ValidateStruct(&yearForm{Year: year})
			assert.Contains(t, errs, "Year", "year %d", year)
		}
	})
}

type registerForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func TestValidateStruct_Register(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		errs := ValidateStruct(&registerForm{
			Email:           "user@example.com",
			Password:        "longenough",
			ConfirmPassword: "longenough",
		})
		assert.Empty(t, errs)
	})

	t.Run("mismatched passwords fail", func(t *testing.T) {
		errs := ValidateStruct(&registerForm{
			Email:           "user@example.com",
			Password:        "longenough",
			ConfirmPassword: "different",
		})
		assert.Equal(t, "Password did not match!", errs["ConfirmPassword"])
	})

	t.Run("short password fails", func(t *testing.T) {
		errs := ValidateStruct(&registerForm{
			Email:           "user@example.com",
			Password:        "short",
			ConfirmPassword: "short",
		})
		assert.Contains(t, errs, "Password")
	})

	t.Run("bad email fails", func(t *testing.T) {
		errs := ValidateStruct(&registerForm{
			Email:           "not-an-email",
			Password:        "longenough",
			ConfirmPassword: "longenough",
		})
		assert.Equal(t, "Invalid email format", errs["Email"])
	})
}
