package session

import "regexp"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateLogin checks login form fields, returning a map of field name to
// message. Empty map means valid.
func ValidateLogin(email, password string) map[string]string {
	errs := make(map[string]string)
	validateEmail(errs, email)
	validatePassword(errs, password)
	return errs
}

// ValidateSignup checks signup form fields, returning a map of field name
// to message. Empty map means valid.
func ValidateSignup(email, password, name string) map[string]string {
	errs := ValidateLogin(email, password)
	if name == "" {
		errs["name"] = "Name is required"
	}
	return errs
}

func validateEmail(errs map[string]string, email string) {
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}
}

func validatePassword(errs map[string]string, password string) {
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < MinPasswordLength {
		errs["password"] = "Password must be at least 6 characters"
	}
}
