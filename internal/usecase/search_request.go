package usecase

import (
	"errors"
	"strings"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SearchRequest is the raw, untrusted form of a search query
type SearchRequest struct {
	Origin      string `validate:"required,alphanum,max=5"`
	Destination string `validate:"required,alphanum,max=5"`
	Date        string `validate:"required,datetime=2006-01-02"`
}

// ParseSearchRequest normalizes and validates raw parameters into a SearchQuery
func ParseSearchRequest(origin, destination, date string) (entity.SearchQuery, error) {
	req := SearchRequest{
		Origin:      utils.NormalizeCode(origin),
		Destination: utils.NormalizeCode(destination),
		Date:        strings.TrimSpace(date),
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return entity.SearchQuery{}, toValidationError(fieldErrs[0])
		}
		return entity.SearchQuery{}, &entity.ValidationError{Field: "request", Message: err.Error()}
	}

	parsed, err := utils.ParseISODate(req.Date)
	if err != nil {
		return entity.SearchQuery{}, &entity.ValidationError{Field: "date", Message: "must be a calendar date formatted YYYY-MM-DD"}
	}

	return entity.SearchQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        parsed,
	}, nil
}

func toValidationError(fe validator.FieldError) *entity.ValidationError {
	field := strings.ToLower(fe.Field())

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "alphanum":
		msg = "must contain only letters and digits"
	case "max":
		msg = "must be at most " + fe.Param() + " characters"
	case "datetime":
		msg = "must be a calendar date formatted YYYY-MM-DD"
	default:
		msg = "is invalid"
	}
	return &entity.ValidationError{Field: field, Message: msg}
}
