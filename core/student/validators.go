package student

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Bam123-spec/drivofy-v2-sub001/core"
)

var (
	emailBasicTag   = "email_basic"
	emailBasicText  = "enter a valid email address"
	emailBasicRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(emailBasicTag, emailBasicValidation)
	core.RegisterCustomTranslation(emailBasicTag, emailBasicText)
}

// Custom Validators

// emailBasicValidation matches the onboarding service's own email rule
// (local@domain.tld) rather than the full RFC grammar, so local validation
// never accepts an address the remote side will reject with a 400.
func emailBasicValidation(fl validator.FieldLevel) bool {
	return emailBasicRegex.MatchString(fl.Field().String())
}

// validationMessage maps a local validation failure to operator-facing copy.
// An email problem wins when several fields are bad.
func validationMessage(err error) string {
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		return msgBadInput
	}
	for _, fld := range vErr.Fields {
		if fld.Field == "email" {
			return msgInvalidEmail
		}
	}
	return msgNameRequired
}
