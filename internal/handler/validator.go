package handler

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/WolfJourney_Go/internal/domain"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var sharedValidator = sync.OnceValue(func() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("stage", validateStage); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
})

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	return sharedValidator()
}

// ValidateStruct validates a struct using its tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// fieldMessages maps a failed tag to the message shown for the field. A
// message containing %s gets the tag parameter.
var fieldMessages = map[string]string{
	"required":         "This field is required",
	"required_without": ErrMsgHealthOrDeltaRequired,
	"stage":            ErrMsgInvalidStageHTTP,
	"len":              "Must have exactly %s items",
	"gtefield":         "Must not be less than %s",
	"min":              "Must be at least %s",
	"gte":              "Must be at least %s",
	"max":              "Must be at most %s",
	"lte":              "Must be at most %s",
}

// FormatValidationError maps each failing JSON field to a message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(failures))
	for _, fe := range failures {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "len" && fe.Field() == "answers" {
		return domain.ErrMsgInvalidAnswerCount
	}
	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		return "Invalid value"
	}
	return strings.Replace(msg, "%s", fe.Param(), 1)
}

func validateStage(fl validator.FieldLevel) bool {
	stage := fl.Field().String()
	return stage == domain.StageSentiment || stage == domain.StageAdventure
}

// jsonFieldName reports fields by their JSON name
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
