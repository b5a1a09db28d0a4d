package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Veteran service IDs: two to four letters, dash, five to eight digits
	serviceIDRegex = regexp.MustCompile(`^[A-Za-z]{2,4}-[0-9]{5,8}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("identity_role", IdentityRole)
	_ = v.RegisterValidation("service_id", ServiceID)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ValidName validates that a string contains only valid name characters
// Rejects most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// IdentityRole validates a registration role. Admin accounts are
// provisioned, never self-registered.
func IdentityRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "veteran", "employer", "mentor":
		return true
	}
	return false
}

// ServiceID accepts either a veteran service identifier or an email
// address, matching the canonical identity model (service ID for veterans,
// email for everyone else).
func ServiceID(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if serviceIDRegex.MatchString(val) {
		return true
	}
	// crude email shape check; full validation uses the email tag
	at := strings.Index(val, "@")
	return at > 0 && strings.Contains(val[at:], ".")
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false // Supplementary characters (mostly emoji/symbols)
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
