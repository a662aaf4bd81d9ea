// Package input turns free-form text into the integer arrays the generators
// work on, and produces sample arrays.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput means no integer could be read from the text.
var ErrInvalidInput = errors.New("please enter valid numbers separated by commas")

// Parse splits text on commas and reads the leading integer of every token,
// so "3.5" reads as 3 and "4x" as 4. Tokens that do not start with an
// optional sign and a digit are dropped silently; an input with no numbers at
// all is an ErrInvalidInput.
func Parse(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")

	var nums []int
	for _, token := range strings.Split(text, ",") {
		n, ok := leadingInt(strings.TrimSpace(token))
		if !ok {
			continue
		}
		nums = append(nums, n)
	}

	if len(nums) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	return nums, nil
}

// leadingInt parses the [+-]?[0-9]+ prefix of s. Values past the int range
// saturate at math.MinInt / math.MaxInt.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// Format renders an array the way Parse reads it back.
func Format(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
