package serverutils

import (
	"fmt"
	"strings"

	"noteverse-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct's `validate` tags and folds failures into a
// single ValidationError listing every offending field.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	ok := false
	if v, isV := err.(validator.ValidationErrors); isV {
		verrs = v
		ok = true
	}
	if !ok {
		return apperr.NewValidation(err.Error())
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return apperr.NewValidation(strings.Join(parts, "; "))
}
