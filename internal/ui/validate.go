package ui

import (
	"regexp"
	"unicode/utf8"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FormErrors holds one message per sign-in field, "" when the field is valid
type FormErrors struct {
	Email    string
	Password string
}

// Valid reports whether no field has an error
func (e FormErrors) Valid() bool {
	return e.Email == "" && e.Password == ""
}

// Fields lists the names of the failing fields
func (e FormErrors) Fields() []string {
	var out []string
	if e.Email != "" {
		out = append(out, "email")
	}
	if e.Password != "" {
		out = append(out, "password")
	}
	return out
}

// ValidateSignIn applies the required and format rules of the sign-in form
func ValidateSignIn(email, password string) FormErrors {
	var errs FormErrors

	switch {
	case email == "":
		errs.Email = "Email is required."
	case !emailPattern.MatchString(email):
		errs.Email = "Email address is invalid."
	}

	switch {
	case password == "":
		errs.Password = "Password is required."
	case utf8.RuneCountInString(password) < minPasswordLength:
		errs.Password = "Password must be at least 8 characters."
	}

	return errs
}
