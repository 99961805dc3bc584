package resolver

import "strings"

// punctuationStripper removes separators that users type inconsistently
// ("coca-cola", "coca cola", "coca.cola" all normalize the same way).
var punctuationStripper = strings.NewReplacer(".", "", "_", "", "-", "")

// Normalize canonicalizes free-text company names for comparison. It is
// applied identically to inputs, database keys, and aliases.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctuationStripper.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// sanitizeForDomain strips internal whitespace so a normalized name can
// be used as a bare domain label.
func sanitizeForDomain(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", "")
}
