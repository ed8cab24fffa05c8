package lc2k

import (
	"bufio"
	"fmt"
	"io"
)

// LoadProgram reads a machine-code image. Each line must start with a
// decimal word; anything after it on the line is ignored.
func LoadProgram(r io.Reader) ([]int32, error) {
	var words []int32

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(words) >= MemorySize {
			return nil, fmt.Errorf("%w: more than %d words",
				ErrProgramTooLarge, MemorySize)
		}

		var word int32
		if _, err := fmt.Sscanf(scanner.Text(), "%d", &word); err != nil {
			return nil, fmt.Errorf("error in reading address %d: %w",
				len(words), err)
		}

		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
