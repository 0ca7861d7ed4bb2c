package importer

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// NormalizeName canonicalizes a participant or field value for matching:
// trimmed, inner whitespace collapsed to single spaces, uppercased.
func NormalizeName(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// SplitAndNormalizeParticipants splits a comma-separated participant list
// into normalized names, sorted so ordering differences in the source
// file do not change the fingerprint.
func SplitAndNormalizeParticipants(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if n := NormalizeName(part); n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Fingerprint derives a stable identity for a routine from its descriptive
// content. Two rows with the same fingerprint are the same routine even if
// the program number moved between imports.
func Fingerprint(studioName, routineTitle, entryType, category, class string, participants []string) string {
	h := sha1.New()
	fields := []string{
		NormalizeName(studioName),
		NormalizeName(routineTitle),
		NormalizeName(entryType),
		NormalizeName(category),
		NormalizeName(class),
		strings.Join(participants, "|"),
	}
	h.Write([]byte(strings.Join(fields, "\x1f")))
	return hex.EncodeToString(h.Sum(nil))
}
