package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkPresence runs the struct's validate tags and turns failures into a
// BadRequest naming the offending fields.
func checkPresence(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewBadRequest("invalid request body")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return models.NewBadRequest("invalid fields: " + strings.Join(fields, ", "))
}
