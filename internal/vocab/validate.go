package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ForbiddenChars are the characters the data file cannot carry in a field.
const ForbiddenChars = "%$ \t\n\r"

// fields mirrors what the user types for one entry.
type fields struct {
	Word        string `validate:"required,token"`
	Meaning     string `validate:"required,token"`
	Explanation string `validate:"token"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// token: no delimiter or whitespace characters.
	_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), IsForbidden) < 0
	})
	return v
}

// ValidateFields checks that an entry can be stored and read back.
func ValidateFields(word, meaning, explanation string) error {
	err := validate.Struct(fields{Word: word, Meaning: meaning, Explanation: explanation})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, name+" is required")
		default:
			msgs = append(msgs, name+" must be a single word without % or $")
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(msgs, "; "))
}

// IsForbidden reports whether r may not appear in a stored field.
func IsForbidden(r rune) bool {
	return strings.ContainsRune(ForbiddenChars, r)
}
