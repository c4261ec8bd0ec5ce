// Package billing owns bill records and bill-number generation.
//
// Bill numbers have the form PREFIX-YYMMNNNN: store-name initials, two-digit
// year and month, and a 4-digit zero-padded counter scoped per
// (prefix, year, month) group. Because the counter is fixed width,
// lexicographic and numeric ordering coincide, so the maximal number in a
// group is also the latest one.
package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/kiranadev/inventory-billing-service/internal/apperr"
)

const sequenceWidth = 4

// Prefix derives the bill prefix from the store name: the uppercase first
// letter of each whitespace-separated word. A word whose leading rune is not
// a letter contributes no initial ("24x7 Mart" -> "M").
func Prefix(storeName string) (string, error) {
	var b strings.Builder
	for _, word := range strings.Fields(storeName) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	if b.Len() == 0 {
		return "", apperr.Wrap(apperr.ErrStoreNameEmpty, "store name %q", storeName)
	}
	return b.String(), nil
}

// GroupKey returns the PREFIX-YYMM scope for the given instant.
func GroupKey(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%02d%02d", prefix, now.Year()%100, int(now.Month()))
}

// GroupBounds returns the half-open range [low, high) that selects every bill
// number belonging to the group in a lexicographic index scan.
func GroupBounds(groupKey string) (low, high string) {
	return groupKey, groupKey + "Z"
}

// NextInGroup computes the next bill number for a group given the bill
// numbers already recorded in it. Malformed entries (wrong prefix or a
// non-numeric 4-digit tail) are returned in skipped so the caller can log
// them; they never abort generation. When the counter would pass 9999 the
// function fails with ErrSequenceExhausted rather than emitting an ambiguous
// wider number.
func NextInGroup(groupKey string, existing []string) (next string, skipped []string, err error) {
	maxSeq := 0
	for _, bn := range existing {
		seq, ok := parseSequence(groupKey, bn)
		if !ok {
			skipped = append(skipped, bn)
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	seq := maxSeq + 1
	if seq > 9999 {
		return "", skipped, apperr.Wrap(apperr.ErrSequenceExhausted, "group %s", groupKey)
	}
	return fmt.Sprintf("%s%0*d", groupKey, sequenceWidth, seq), skipped, nil
}

func parseSequence(groupKey, billNumber string) (int, bool) {
	if !strings.HasPrefix(billNumber, groupKey) {
		return 0, false
	}
	tail := billNumber[len(groupKey):]
	if len(tail) != sequenceWidth {
		return 0, false
	}
	for _, r := range tail {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	seq, _ := strconv.Atoi(tail)
	return seq, true
}
