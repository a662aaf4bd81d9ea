package edgecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		arr  []int
		want Class
	}{
		{"nil", nil, Empty},
		{"empty", []int{}, Empty},
		{"singleton", []int{7}, Singleton},
		{"sorted", []int{1, 2, 3}, Sorted},
		{"sorted with ties", []int{1, 1, 2, 2}, Sorted},
		{"all equal is sorted first", []int{4, 4, 4, 4}, Sorted},
		{"reverse", []int{9, 5, 2}, Reverse},
		{"reverse with ties", []int{9, 9, 5, 5, 2}, Reverse},
		{"duplicate heavy", []int{3, 1, 3, 1, 3, 1}, DuplicateHeavy},
		{"exactly half distinct", []int{3, 1, 3, 1}, None},
		{"generic", []int{5, 3, 8, 1}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.arr))
		})
	}
}

func TestClassifyDoesNotMutate(t *testing.T) {
	arr := []int{3, 1, 2}
	Classify(arr)
	assert.Equal(t, []int{3, 1, 2}, arr)
}

func TestAdvice(t *testing.T) {
	assert.Empty(t, None.Advice())
	assert.Contains(t, Reverse.Advice(), "Worst case")
	assert.True(t, DuplicateHeavy.Warning())
	assert.False(t, Sorted.Warning())
	assert.Equal(t, "reverse-sorted", Reverse.String())
}
