package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"wellbeing-client/pkg/timeofday"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type CustomValidator struct {
	validator *validator.Validate
	now       func() time.Time
}

func NewValidator() *CustomValidator {
	cv := &CustomValidator{
		validator: validator.New(),
		now:       time.Now,
	}

	// Report fields by their JSON name so messages match the API payload.
	cv.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	cv.validator.RegisterValidation("hhmm", validateTimeOfDay)
	cv.validator.RegisterValidation("isodate", validateDate)
	cv.validator.RegisterValidation("phone", validatePhone)
	cv.validator.RegisterValidation("strongpassword", validateStrongPassword)
	cv.validator.RegisterValidation("minage", cv.validateMinAge)
	cv.validator.RegisterValidation("maxage", cv.validateMaxAge)

	return cv
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "hhmm":
				errors[field] = field + " must be a time in HH:MM format"
			case "isodate":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "phone":
				errors[field] = field + " must have 10 to 15 digits, optionally starting with +"
			case "strongpassword":
				errors[field] = field + " must have at least 8 characters, one number and one uppercase letter"
			case "minage":
				errors[field] = field + " must correspond to an age of at least " + e.Param()
			case "maxage":
				errors[field] = field + " must correspond to an age of at most " + e.Param()
			case "url":
				errors[field] = field + " must be a valid URL"
			case "eqfield":
				errors[field] = field + " does not match"
			case "nefield":
				errors[field] = field + " must be different from the current value"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return timeofday.Valid(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := timeofday.ParseDate(fl.Field().String())
	return err == nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasUpper
}

func (cv *CustomValidator) validateMinAge(fl validator.FieldLevel) bool {
	age, ok := cv.ageOf(fl)
	if !ok {
		return false
	}
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return age >= min
}

func (cv *CustomValidator) validateMaxAge(fl validator.FieldLevel) bool {
	age, ok := cv.ageOf(fl)
	if !ok {
		return false
	}
	max, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return age <= max
}

// ageOf computes completed years between a YYYY-MM-DD birth date and today.
func (cv *CustomValidator) ageOf(fl validator.FieldLevel) (int, bool) {
	birth, err := timeofday.ParseDate(fl.Field().String())
	if err != nil {
		return 0, false
	}
	return Age(birth, cv.now()), true
}

// Age returns the number of completed years between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
