package source

import (
	"fmt"
	"os"
)

// ReadTail returns at most maxLines normalized lines from the end of the
// file at path, in order. A maxLines of zero or less returns nothing.
func ReadTail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	next, seen := 0, 0
	err = scan(file, func(line string) error {
		ring[next] = line
		next = (next + 1) % maxLines
		seen++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if seen < maxLines {
		return ring[:seen:seen], nil
	}
	return append(ring[next:], ring[:next]...), nil
}
