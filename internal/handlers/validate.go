package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// categoryForm is submitted by the category filter.
type categoryForm struct {
	Category string `form:"category" validate:"required,max=100"`
}

// addForm is submitted by a product card's add button.
type addForm struct {
	ProductID int `form:"product_id" validate:"gt=0"`
}

// quantityForm is submitted by the quantity input. Values below one are
// accepted and clamped by the cart.
type quantityForm struct {
	Quantity int `form:"quantity" validate:"lte=9999"`
}

func parseCategoryForm(r *http.Request) (categoryForm, error) {
	if err := r.ParseForm(); err != nil {
		return categoryForm{}, fmt.Errorf("invalid form: %w", err)
	}
	f := categoryForm{Category: strings.TrimSpace(r.PostForm.Get("category"))}
	return f, validateForm(f)
}

func parseAddForm(r *http.Request) (addForm, error) {
	if err := r.ParseForm(); err != nil {
		return addForm{}, fmt.Errorf("invalid form: %w", err)
	}
	id, err := formInt(r, "product_id")
	if err != nil {
		return addForm{}, err
	}
	f := addForm{ProductID: id}
	return f, validateForm(f)
}

func parseQuantityForm(r *http.Request) (quantityForm, error) {
	if err := r.ParseForm(); err != nil {
		return quantityForm{}, fmt.Errorf("invalid form: %w", err)
	}
	q, err := formInt(r, "quantity")
	if err != nil {
		return quantityForm{}, err
	}
	f := quantityForm{Quantity: q}
	return f, validateForm(f)
}

// productIDParam reads the {id} URL parameter.
func productIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := strings.TrimSpace(r.PostForm.Get(field))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return n, nil
}

// validateForm runs struct validation and reduces the result to the first
// field message.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("%s %s", fe.Field(), validationMessage(fe))
	}
	return err
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
