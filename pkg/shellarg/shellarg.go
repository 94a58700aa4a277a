// Package shellarg renders arbitrary strings as POSIX shell argument
// literals for display — logging, documentation, command previews. A
// formatted literal lexes back to exactly one shell word equal to the
// original string. The package never executes anything and makes no
// safety claims beyond shell-lexical correctness; in particular a value
// like "--force" passes through unquoted.
package shellarg

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNotString is returned by FormatValue when the supplied value is not
// a string.
var ErrNotString = errors.New("arg must be a string")

// ErrContainsNUL is returned when the argument embeds U+0000, which no
// shell argument can carry.
var ErrContainsNUL = errors.New("arg must not include NUL (\x00)")

// metachars force quoting: any of these would be interpreted by a POSIX
// shell outside quotes.
const metachars = "'\"\\$`|&;<>()*?[]{}!#"

// NeedsQuoting reports whether arg can not be displayed verbatim as a
// single shell word. Quoting is required for empty strings, a leading
// tilde (home expansion), Unicode whitespace, ASCII control characters,
// and shell metacharacters. NUL contributes nothing here; Format rejects
// it before classification.
func NeedsQuoting(arg string) bool {
	if arg == "" || strings.HasPrefix(arg, "~") {
		return true
	}
	for _, r := range arg {
		switch {
		case unicode.IsSpace(r):
			return true
		case r >= 0x01 && r <= 0x1f, r == 0x7f:
			return true
		case strings.ContainsRune(metachars, r):
			return true
		}
	}
	return false
}

// Format renders arg as a POSIX shell argument literal. Arguments that
// need no quoting come back unchanged; everything else is wrapped in
// single quotes with each embedded quote escaped as '\''. Arguments
// containing NUL fail with ErrContainsNUL and no output.
func Format(arg string) (string, error) {
	if strings.ContainsRune(arg, 0) {
		return "", ErrContainsNUL
	}
	if !NeedsQuoting(arg) {
		return arg, nil
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'", nil
}

// FormatValue is Format for values of unknown dynamic type, such as
// decoded JSON. Non-string values fail with ErrNotString.
func FormatValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", ErrNotString
	}
	return Format(s)
}
