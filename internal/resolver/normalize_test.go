package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "GitHub", "github"},
		{"trim", "  shopify  ", "shopify"},
		{"strip-dots", "coca.cola", "cocacola"},
		{"strip-hyphens", "coca-cola", "cocacola"},
		{"strip-underscores", "some_company", "somecompany"},
		{"collapse-whitespace", "warner   bros", "warner bros"},
		{"mixed", "  Coca-Cola  Company ", "cocacola company"},
		{"empty", "", ""},
		{"only-punctuation", "._-", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"GitHub", " Coca-Cola ", "warner   bros", "AT&T"}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once))
	}
}

func TestSanitizeForDomain(t *testing.T) {
	t.Parallel()

	require.Equal(t, "warnerbros", sanitizeForDomain("Warner Bros"))
	require.Equal(t, "", sanitizeForDomain("   "))
}
