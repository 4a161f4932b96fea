// Package version compares printstack release numbers.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// parse splits "v1.2.3" or "1.2.3" into its numeric parts.
func parse(s string) ([]int, error) {
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version %q: %q is not a number", s, p)
		}
		nums[i] = n
	}

	return nums, nil
}

// Compare returns -1, 0 or +1 depending on whether a is older than, equal to or newer than b.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	return slices.Compare(av, bv), nil
}
