package domain

import "strings"

// orDefault returns s trimmed, or def when s is blank.
func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// digitsOnly strips every non-digit from a phone number.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// uniqueEmails flattens the lists, dropping blanks and case-insensitive
// duplicates while keeping first-seen order.
func uniqueEmails(lists ...[]string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, list := range lists {
		for _, email := range list {
			email = strings.TrimSpace(email)
			key := strings.ToLower(email)
			if email == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, email)
		}
	}
	return out
}
