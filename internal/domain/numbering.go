package domain

import (
	"strconv"
	"strings"

	"coursecraft/internal/model"
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Numeral renders n (1-based) in the given style: 1, A, I.
// Alphabetic numbering continues past Z as AA, AB, ...
func Numeral(style model.NumberingStyle, n int) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	switch style {
	case model.NumberingAlphabetic:
		var b []byte
		for n > 0 {
			n--
			b = append([]byte{byte('A' + n%26)}, b...)
			n /= 26
		}
		return string(b)
	case model.NumberingRoman:
		var sb strings.Builder
		for _, r := range romanTable {
			for n >= r.value {
				sb.WriteString(r.symbol)
				n -= r.value
			}
		}
		return sb.String()
	default:
		return strconv.Itoa(n)
	}
}

// DefaultSessionName name given to a new session when the author supplies none.
// Guides are numbered among guides using the template label; the other types
// take a fixed label and their position.
func DefaultSessionName(t model.DisciplineTemplate, typ model.SessionType, ordinal int) string {
	switch typ {
	case model.SessionGuide:
		return t.SessionLabel + " " + Numeral(t.Numbering, ordinal)
	case model.SessionPresentation:
		return "Apresentação"
	case model.SessionAssessment:
		return "Avaliação " + strconv.Itoa(ordinal)
	}
	return strconv.Itoa(ordinal)
}
