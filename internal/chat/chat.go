// Package chat implements the in-band text formatting convention used by
// item display names and lore: a section sign (§) followed by a single code
// character selects a color or style until the next code or reset.
package chat

import "strings"

// SectionChar is the native formatting marker.
const SectionChar = '§'

// AltChar is the reserved escape character accepted in user-supplied text.
const AltChar = '&'

// codeChars are the characters that form a valid formatting code after a
// marker: colors 0-9/a-f, styles k-o and reset r.
const codeChars = "0123456789AaBbCcDdEeFfKkLlMmNnOoRr"

// Color and style codes, prefixed with the native marker.
const (
	Black       = "§0"
	DarkBlue    = "§1"
	DarkGreen   = "§2"
	DarkAqua    = "§3"
	DarkRed     = "§4"
	DarkPurple  = "§5"
	Gold        = "§6"
	Gray        = "§7"
	DarkGray    = "§8"
	Blue        = "§9"
	Green       = "§a"
	Aqua        = "§b"
	Red         = "§c"
	LightPurple = "§d"
	Yellow      = "§e"
	White       = "§f"
	Obfuscated  = "§k"
	Bold        = "§l"
	Strike      = "§m"
	Underline   = "§n"
	Italic      = "§o"
	Reset       = "§r"
)

// Translate rewrites every occurrence of altChar followed by a valid code
// character into the native marker. An altChar followed by anything else,
// or at the end of the string, passes through untouched.
func Translate(altChar byte, s string) string {
	if !strings.ContainsRune(s, rune(altChar)) {
		return s
	}
	out := []rune(s)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == rune(altChar) && strings.ContainsRune(codeChars, out[i+1]) {
			out[i] = SectionChar
			out[i+1] = toLower(out[i+1])
		}
	}
	return string(out)
}

// Strip removes every native formatting code from the string.
func Strip(s string) string {
	if !strings.ContainsRune(s, SectionChar) {
		return s
	}
	in := []rune(s)
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		if in[i] == SectionChar && i+1 < len(in) && strings.ContainsRune(codeChars, in[i+1]) {
			i++
			continue
		}
		out = append(out, in[i])
	}
	return string(out)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
