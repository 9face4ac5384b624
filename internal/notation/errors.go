package notation

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a
// human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand an empty expression")
	}
	return fmt.Errorf("I wasn't able to understand %q: dice notation looks like 2d6, d20+3 or 2d6+1d4-1", input)
}
