package ledger

import (
	"strings"
	"unicode/utf8"
)

// DeriveUsername builds a username from the lowercase first letter of every
// word in owner, in order. "Steven Thomas Williams" becomes "stw".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}
