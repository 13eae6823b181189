package naming

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultIndentWidth is the number of spaces per indentation level.
const DefaultIndentWidth = 2

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
// Example: "user" -> "User"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CamelCase converts s to camelCase. Hyphens and underscores are treated as
// word separators alongside whitespace; the first word is lower-cased and
// every following word is capitalized.
// Example: "user_name" -> "userName"
// Example: "first name" -> "firstName"
func CamelCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(separatorReplacer.Replace(s))
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	out.Grow(len(s))
	out.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		out.WriteString(Capitalize(word))
	}
	return out.String()
}

// PascalCase converts s to PascalCase by capitalizing its camelCase form.
// Example: "user_name" -> "UserName"
func PascalCase(s string) string {
	return Capitalize(CamelCase(s))
}

// Indent returns level indentation steps of DefaultIndentWidth spaces.
func Indent(level int) string {
	return IndentWidth(level, DefaultIndentWidth)
}

// IndentWidth returns level*width spaces. Non-positive inputs yield "".
func IndentWidth(level, width int) string {
	if level <= 0 || width <= 0 {
		return ""
	}
	return strings.Repeat(" ", level*width)
}

// Identifier derives the identifier used for a field across all generated
// artifacts. The name is trimmed and camel-cased, diacritics are folded to
// their ASCII base letter, characters outside [A-Za-z0-9_$] are dropped, and
// a leading digit is escaped with an underscore. Names with no usable
// character yield "".
// Example: "first-name" -> "firstName"
// Example: "2nd address" -> "_2ndAddress"
func Identifier(name string) string {
	return sanitize(CamelCase(strings.TrimSpace(name)))
}

// IdentifierAt is Identifier with a positional fallback, "field<index+1>",
// for names that yield no identifier.
// Example: ("日本語", 0) -> "field1"
func IdentifierAt(name string, index int) string {
	if ident := Identifier(name); ident != "" {
		return ident
	}
	return "field" + strconv.Itoa(index+1)
}

// TypeName derives a class or interface name with the same character rules
// as Identifier.
// Example: "2 person" -> "_2Person"
func TypeName(name string) string {
	return sanitize(PascalCase(strings.TrimSpace(name)))
}

// FileStem returns the trimmed name used to build generated file names.
func FileStem(name string) string {
	return strings.TrimSpace(name)
}

func sanitize(s string) string {
	if s == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(s))
	for _, r := range foldASCII(s) {
		if isIdentRune(r) {
			out.WriteRune(r)
		}
	}

	ident := out.String()
	if ident != "" && isDigit(rune(ident[0])) {
		ident = "_" + ident
	}
	return ident
}

func foldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isIdentRune(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_' || r == '$'
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
