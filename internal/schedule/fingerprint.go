package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// Fingerprint hashes the canonical form of the criteria so logically equal
// selections always produce the same cache key regardless of input order.
func Fingerprint(criteria models.SelectionCriteria) string {
	var b strings.Builder

	b.WriteString("courses=")
	b.WriteString(canonicalSet(criteria.Courses))
	b.WriteString("&instructors=")
	b.WriteString(canonicalSet(criteria.ExcludedInstructors))
	b.WriteString("&times=")
	b.WriteString(canonicalSet(criteria.ExcludedTimeRanges))
	b.WriteString("&days=")
	b.WriteString(canonicalSet(criteria.ExcludedDays))

	slots := make([]string, 0, len(criteria.ExcludedCustomSlots))
	for _, slot := range criteria.ExcludedCustomSlots {
		slots = append(slots, slot.Day+"|"+slot.Start+"|"+slot.End)
	}
	b.WriteString("&custom=")
	b.WriteString(canonicalSet(slots))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func canonicalSet(values []string) string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	sort.Strings(trimmed)
	return strings.Join(trimmed, ",")
}
