package regs

import (
	"fmt"
	"math"

	"github.com/Manu343726/tdesc/pkg/utils"
)

// Marks an omitted slice endpoint. An omitted start resolves to the first
// member of the container, an omitted stop resolves to the member count.
const End = math.MaxInt

// Resolves a (start, stop, step) selection against a container of n members,
// returning the ordered member positions it selects. Follows half-open strided
// range semantics: negative endpoints count backwards from the end of the
// container and both endpoints are clamped into [0, n]. A selection that
// resolves to no positions is an error, register classes are never empty.
func ResolveSlice(n, start, stop, step int) ([]int, error) {
	if step <= 0 {
		return nil, utils.MakeError(ErrRange, "slice step must be a positive integer, got %v", step)
	}

	spec := formatSlice(start, stop, step)

	if start == End {
		start = 0
	} else if start < 0 {
		start += n
	}

	if stop == End {
		stop = n
	} else if stop < 0 {
		stop += n
	}

	start = min(max(start, 0), n)
	stop = min(max(stop, 0), n)

	positions := []int{}

	for i := start; i < stop; {
		positions = append(positions, i)

		// i + step may overflow for oversized steps; stop - step cannot,
		// both operands are within [0, n] and [1, MaxInt]
		if i > stop-step {
			break
		}

		i += step
	}

	if len(positions) == 0 {
		return nil, utils.MakeError(ErrRange, "slice %v selects no registers out of %v", spec, n)
	}

	return positions, nil
}

func formatSlice(start, stop, step int) string {
	bound := func(value int) string {
		if value == End {
			return ""
		}

		return fmt.Sprint(value)
	}

	return fmt.Sprintf("[%v:%v:%v]", bound(start), bound(stop), step)
}
