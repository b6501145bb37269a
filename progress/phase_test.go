package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseForLesson(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		id       uint
		expected int
	}{
		{name: "stage1 slug", slug: "stage1-1", id: 1, expected: 1},
		{name: "stage5 slug", slug: "stage5-4", id: 12, expected: 1},
		{name: "ending slug", slug: "ending-1", id: 20, expected: 1},
		{name: "stage6 slug", slug: "stage6-1", id: 21, expected: 2},
		{name: "phase2 slug", slug: "phase2-3", id: 25, expected: 2},
		{name: "stage13 slug", slug: "stage13-2", id: 60, expected: 3},
		{name: "phase3 slug", slug: "phase3-1", id: 45, expected: 3},
		{name: "stage10 does not match stage1 prefix", slug: "stage10-1", id: 50, expected: 3},
		{name: "numeric slug in phase1 range", slug: "15", id: 99, expected: 1},
		{name: "numeric slug in phase2 range", slug: "30", id: 99, expected: 2},
		{name: "numeric slug in phase3 range", slug: "41", id: 1, expected: 3},
		{name: "unknown slug falls back to id range", slug: "intro", id: 22, expected: 2},
		{name: "unknown slug and id defaults to phase1", slug: "intro", id: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PhaseForLesson(tt.slug, tt.id))
		})
	}
}
