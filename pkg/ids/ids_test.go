package ids

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		assert.Len(t, id, 26)
		assert.False(t, seen[id], "duplicate id generated")
		seen[id] = true
	}
}

func TestNew_Sortable(t *testing.T) {
	generated := make([]string, 100)
	for i := range generated {
		generated[i] = New()
	}
	assert.True(t, sort.StringsAreSorted(generated), "ids from one generator should be monotonic")
}
