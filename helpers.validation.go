package main

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var _ BookValidator = (*PlaygroundBookValidator)(nil) // ensure PlaygroundBookValidator implements BookValidator.

// FieldErrors is the set of field-level error messages produced
// by the validation of a book creation or update payload. An
// empty set means the payload is valid.
type FieldErrors []string

// Error joins all field messages so the set can travel as a single error value.
func (fe FieldErrors) Error() string {
	return strings.Join(fe, "; ")
}

// BookValidator checks candidate book entities before any persistence call.
type BookValidator interface {
	ValidateCreate(book *Book) FieldErrors
	ValidateUpdate(book *Book) FieldErrors
}

// PlaygroundBookValidator implements the BookValidator interface
// on top of the go-playground validator engine.
type PlaygroundBookValidator struct {
	validate *validator.Validate
}

// NewBookValidator returns a ready to use books payload validator. Field
// names inside error messages come from the json tags so they match what
// the client actually sent.
func NewBookValidator() *PlaygroundBookValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &PlaygroundBookValidator{validate: v}
}

// ValidateCreate returns the set of field errors of a book creation payload.
func (bv *PlaygroundBookValidator) ValidateCreate(book *Book) FieldErrors {
	return bv.collect(book)
}

// ValidateUpdate returns the set of field errors of a book update payload.
// On top of the creation rules, an update must carry the book id.
func (bv *PlaygroundBookValidator) ValidateUpdate(book *Book) FieldErrors {
	var fieldErrors FieldErrors
	if len(book.ID) == 0 {
		fieldErrors = append(fieldErrors, "id is required")
	}
	return append(fieldErrors, bv.collect(book)...)
}

func (bv *PlaygroundBookValidator) collect(book *Book) FieldErrors {
	err := bv.validate.Struct(book)
	if err == nil {
		return nil
	}

	var fieldErrors FieldErrors
	for _, ve := range err.(validator.ValidationErrors) {
		switch ve.Tag() {
		case "required":
			fieldErrors = append(fieldErrors, ve.Field()+" is required")
		default:
			fieldErrors = append(fieldErrors, ve.Field()+" is invalid")
		}
	}
	return fieldErrors
}
