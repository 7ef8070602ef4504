package languages

import "testing"

func TestCatalog_IncludesOriginalAndEnglish(t *testing.T) {
	c := Catalog()
	if c[Original] != "Original Language" {
		t.Fatalf("missing original entry: %v", c)
	}
	if c["en"] != "English" {
		t.Fatalf("missing en entry: %v", c)
	}
	if len(c) != 13 {
		t.Fatalf("expected 13 entries, got %d", len(c))
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	delete(c, "en")
	if DisplayName("en") != "English" {
		t.Fatalf("catalog must not be mutable through the returned map")
	}
}

func TestIsOriginal(t *testing.T) {
	for _, in := range []string{"", "original", " ORIGINAL "} {
		if !IsOriginal(in) {
			t.Errorf("IsOriginal(%q) = false", in)
		}
	}
	if IsOriginal("en") {
		t.Fatalf("en is not original")
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":          Original,
		"Original":  Original,
		"ES":        "es",
		"en-US":     "en",
		"pt-BR":     "pt",
		"zh-Hant":   "zh",
		"sv":        "sv",
		"not a tag": "not a tag",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCodes_StartWithOriginal(t *testing.T) {
	codes := Codes()
	if codes[0] != Original {
		t.Fatalf("expected original first, got %v", codes)
	}
}
