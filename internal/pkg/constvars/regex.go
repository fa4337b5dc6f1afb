package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexNumeric                      = `^\d+$`
	RegexIndonesiaPhoneNumber         = `^(?:\+62|62|0)8[1-9][0-9]{6,10}$`
)
