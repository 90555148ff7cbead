package seller

import "strings"

const minPasswordLength = 8

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength
}
