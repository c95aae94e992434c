package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if len(handle) < 3 || len(handle) > 50 {
		return errors.New("handle must be between 3 and 50 characters")
	}

	if !handleRegex.MatchString(handle) {
		return errors.New("handle can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return errors.New("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}

	return nil
}

// EmailDomain returns the lowercased domain part of an address, "" when
// the address has no @.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// DomainAllowed reports whether the address belongs to one of the
// allowed institutional domains. Subdomains of an allowed domain pass too
// (icu.hospital.org is fine when hospital.org is listed).
func DomainAllowed(email string, allowed []string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	for _, d := range allowed {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	return false
}
