package casefold

// ASCII fast paths. For ASCII input every byte is its own grapheme cluster
// except for the pair CR LF, and folding maps 'A'-'Z' to 'a'-'z' with the
// exception of 'I' which the Turkic variant maps to 'ı'.

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

var _lower = [128]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'a', 'b', 'c',
	'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r',
	's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '[', '\\', ']', '^', '_', '`', 'a',
	'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 127,
}

// dotlessI is the UTF-8 encoding of 'ı' (U+0131).
const dotlessI = "\u0131"

// foldedLenASCII returns the length of the folded form of the ASCII string s
// and whether folding changes s.
func foldedLenASCII(s string, v Variant) (n int, changed bool) {
	n = len(s)
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			changed = true
			if s[i] == 'I' && v == Turkic {
				n += len(dotlessI) - 1
			}
		}
	}
	return n, changed
}

// foldASCII is the ASCII only version of foldGraphemes.
func foldASCII(s string, v Variant) *FoldedString {
	n, changed := foldedLenASCII(s, v)

	var b []byte
	if changed {
		b = make([]byte, 0, n)
	}
	graphemes := make([]int, 0, n+1)

	g := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 'I' && v == Turkic:
			b = append(b, dotlessI...)
			graphemes = append(graphemes, g, g)
		case c == '\r' && i+1 < len(s) && s[i+1] == '\n':
			if changed {
				b = append(b, '\r', '\n')
			}
			graphemes = append(graphemes, g, g)
			i++
		default:
			if changed {
				b = append(b, _lower[c])
			}
			graphemes = append(graphemes, g)
		}
		g++
	}
	graphemes = append(graphemes, g)

	folded := s
	if changed {
		folded = string(b)
	}
	return &FoldedString{folded: folded, graphemes: graphemes}
}

func simpleFoldASCII(s string, v Variant) string {
	n, changed := foldedLenASCII(s, v)
	if !changed {
		return s
	}
	b := make([]byte, 0, n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'I' && v == Turkic {
			b = append(b, dotlessI...)
		} else {
			b = append(b, _lower[c])
		}
	}
	return string(b)
}
