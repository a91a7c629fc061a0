package dom

import "github.com/vango-dev/vmini/internal/errors"

// ValidateTag reports whether tag is usable as an element name.
// The rules follow the DOM's name production closely enough for HTML:
// a letter first, then letters, digits, '-', '_', '.' or ':'.
func ValidateTag(tag string) error {
	if tag == "" {
		return errors.New("E101").WithDetail("tag is empty")
	}
	for i, r := range tag {
		switch {
		case isASCIILetter(r):
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_' || r == '.' || r == ':'):
		default:
			return errors.New("E101").
				WithDetailf("tag %q has invalid character %q at %d", tag, r, i).
				WithSuggestion("Element names start with a letter and contain letters, digits, '-', '_', '.' or ':'")
		}
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
