package marketplace

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
)

// TalentInput is the editable part of a talent profile.
type TalentInput struct {
	DisplayName   string  `validate:"required,max=120"`
	Bio           string  `validate:"max=4000"`
	PostalCode    string  `validate:"required,postalcode"`
	City          string  `validate:"max=120"`
	MaxDistanceKm float64 `validate:"gte=1,lte=500"`
	Available     bool
	SkillIDs      []domain.SkillID `validate:"max=50,unique,dive,gt=0"`
}

// ProjectInput is the content of a new project.
type ProjectInput struct {
	Title          string              `validate:"required,max=200"`
	Description    string              `validate:"max=10000"`
	Phase          domain.ProjectPhase `validate:"required,oneof=idea prototype launch growth"`
	PostalCode     string              `validate:"required,postalcode"`
	City           string              `validate:"max=120"`
	RemotePossible bool
	SkillIDs       []domain.SkillID `validate:"max=30,unique,dive,gt=0"`
}

type applicationInput struct {
	Message string `validate:"max=2000"`
}

var (
	postalCodeRe = regexp.MustCompile(`^[0-9]{5}$`)
	validate     = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// French postal codes are always 5 digits, overseas ones included.
	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodeRe.MatchString(fl.Field().String())
	})

	return v
}

// validateInput turns the first validation failure into a bad request.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", describe(verrs[0]))
	}

	return fmt.Errorf("could not validate input: %w", err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "postalcode":
		return fmt.Sprintf("%s must be a 5-digit postal code", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", fe.Field())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
