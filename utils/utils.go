package utils

import (
	rndm "math/rand"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var base36Runes = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateConfirmationCode creates a random base-36 code. Purely cosmetic,
// not cryptographically meaningful.
func GenerateConfirmationCode(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = base36Runes[rndm.Intn(len(base36Runes))]
	}
	return string(b)
}

// SplitTags takes a comma-separated string and returns a cleaned []string
func SplitTags(input string) []string {
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	var tags []string
	seen := make(map[string]bool)

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		tag = strings.ToLower(tag)
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}
