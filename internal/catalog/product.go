package catalog

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Product is one inventory entry.
type Product struct {
	Name string  `json:"product" validate:"required"`
	Shop string  `json:"shop"`
	Cost float64 `json:"cost" validate:"finite"`
}

// Catalog is the ordered collection of products held for one invocation.
// Order is insertion order; entries are neither keyed nor deduplicated.
type Catalog []Product

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON key so messages match the file format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// JSON has no representation for NaN or infinities
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// NewProduct builds a Product with every field set and checks it can be
// stored: the name must be non-empty and the cost a finite number.
// Returns a *ValidationError describing each violated constraint.
func NewProduct(name, shop string, cost float64) (Product, error) {
	p := Product{Name: name, Shop: shop, Cost: cost}

	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Product{}, fmt.Errorf("failed to validate product: %w", err)
		}

		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, describeFieldError(fe))
		}
		return Product{}, &ValidationError{
			Index:    -1,
			Message:  ErrValidation.Error(),
			Problems: problems,
		}
	}

	return p, nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: value is required", fe.Field())
	case "finite":
		return fmt.Sprintf("%s: must be a finite number", fe.Field())
	default:
		return fmt.Sprintf("%s: failed %q check", fe.Field(), fe.Tag())
	}
}

// Add appends p to the end of the catalog and returns the result.
func (c Catalog) Add(p Product) Catalog {
	return append(c, p)
}

// Add builds a product from the given fields and appends it to c.
// No duplicate check is made.
func Add(c Catalog, name, shop string, cost float64) (Catalog, error) {
	p, err := NewProduct(name, shop, cost)
	if err != nil {
		return c, err
	}
	return c.Add(p), nil
}

// SelectByShop returns the products whose shop equals shop exactly
// (case-sensitive), in their original order. The result is never nil.
func SelectByShop(c Catalog, shop string) Catalog {
	selected := Catalog{}
	for _, p := range c {
		if p.Shop == shop {
			selected = append(selected, p)
		}
	}
	return selected
}
