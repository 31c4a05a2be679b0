package cipher

// Alphabet is the ordered symbol set used by the substitution cipher. A
// symbol's position is its numeric value.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"

const alphabetSize = len(Alphabet)

var alphabetIndex = buildAlphabetIndex(Alphabet)

func buildAlphabetIndex(s string) [128]int8 {
	var idx [128]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(s); i++ {
		if idx[s[i]] != -1 {
			panic("cipher: alphabet contains duplicate symbol " + string(s[i]))
		}
		idx[s[i]] = int8(i)
	}
	return idx
}

// IndexOf returns the alphabet position of r, or -1 when r is not part of
// the alphabet.
func IndexOf(r rune) int {
	if r < 0 || r >= 128 {
		return -1
	}
	return int(alphabetIndex[r])
}
