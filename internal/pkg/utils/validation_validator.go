package utils

import (
	"kemandirian-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("usia", validateUsia)
	validate.RegisterValidation("phone_number_id", validatePhoneNumberID)
	validate.RegisterValidation("import_mode", validateImportMode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

// The original forms capture age as a free-text field; accept digits only.
func validateUsia(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexNumeric).MatchString(fl.Field().String())
}

func validatePhoneNumberID(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	if phoneNumber == "" {
		return true
	}
	return regexp.MustCompile(constvars.RegexIndonesiaPhoneNumber).MatchString(phoneNumber)
}

func validateImportMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ImportModeReplace || value == constvars.ImportModeMerge
}
