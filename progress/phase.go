package progress

import (
	"strconv"
	"strings"
)

// PhaseForLesson infers the curriculum phase from a lesson's slug, falling
// back to numeric id ranges for legacy lessons whose slug is just a number.
func PhaseForLesson(slug string, id uint) int {
	phase1Prefixes := []string{"stage0-", "stage1-", "stage2-", "stage3-", "stage4-", "stage5-", "ending-"}
	phase2Prefixes := []string{"stage6-", "stage7-", "stage8-", "stage9-", "phase2-"}
	phase3Prefixes := []string{"stage10-", "stage11-", "stage12-", "stage13-", "phase3-"}

	for _, prefix := range phase1Prefixes {
		if strings.HasPrefix(slug, prefix) {
			return 1
		}
	}
	for _, prefix := range phase2Prefixes {
		if strings.HasPrefix(slug, prefix) {
			return 2
		}
	}
	for _, prefix := range phase3Prefixes {
		if strings.HasPrefix(slug, prefix) {
			return 3
		}
	}

	// Legacy numeric slugs map to phases by id range.
	numeric := id
	if parsed, err := strconv.ParseUint(slug, 10, 32); err == nil {
		numeric = uint(parsed)
	}
	switch {
	case numeric >= 1 && numeric <= 20:
		return 1
	case numeric >= 21 && numeric <= 40:
		return 2
	case numeric >= 41:
		return 3
	}
	return 1
}
