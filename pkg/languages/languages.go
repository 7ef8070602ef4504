// Package languages holds the static translation target catalog.
package languages

import (
	"strings"

	"golang.org/x/text/language"
)

// Original is the pseudo-code meaning "keep the recognized language".
const Original = "original"

type entry struct {
	code    string
	display string
}

var catalog = []entry{
	{Original, "Original Language"},
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ru", "Russian"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"zh", "Chinese"},
	{"ar", "Arabic"},
	{"hi", "Hindi"},
}

var byCode map[string]string

func init() {
	byCode = make(map[string]string, len(catalog))
	for _, e := range catalog {
		byCode[e.code] = e.display
	}
}

// Catalog returns a copy of the code -> display name map.
func Catalog() map[string]string {
	out := make(map[string]string, len(byCode))
	for k, v := range byCode {
		out[k] = v
	}
	return out
}

// Codes returns catalog codes in display order.
func Codes() []string {
	codes := make([]string, 0, len(catalog))
	for _, e := range catalog {
		codes = append(codes, e.code)
	}
	return codes
}

// DisplayName returns the catalog name for code, or "" when absent.
func DisplayName(code string) string {
	return byCode[strings.ToLower(strings.TrimSpace(code))]
}

// IsOriginal reports whether code asks for no translation.
func IsOriginal(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	return code == "" || code == Original
}

// Normalize canonicalizes a target language. Parseable BCP 47 tags reduce to
// their base language when the catalog knows it ("en-US" -> "en"); anything
// else is lower-cased and passed through.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsOriginal(code) {
		return Original
	}
	if _, ok := byCode[code]; ok {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	if _, ok := byCode[base.String()]; ok {
		return base.String()
	}
	return tag.String()
}
