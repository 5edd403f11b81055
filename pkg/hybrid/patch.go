package hybrid

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dappsmith/conductor/pkg/models"
)

// ApplyPatches replaces the bodies of the patched steps inside a spec
// program. Headers and unpatched steps are kept byte-for-byte. Patches
// apply bottom-up so byte offsets stay valid; a patch addressing a
// step the program does not contain is an error.
func ApplyPatches(code string, patches []models.SpecPatch) (string, error) {
	if len(patches) == 0 {
		return code, nil
	}
	regions := stepRegions(code)
	byStep := make(map[int]stepRegion, len(regions))
	for _, r := range regions {
		byStep[r.number] = r
	}
	ordered := make([]models.SpecPatch, len(patches))
	copy(ordered, patches)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Step > ordered[j].Step })

	out := code
	seen := make(map[int]bool, len(ordered))
	for _, p := range ordered {
		if seen[p.Step] {
			return "", fmt.Errorf("duplicate patch for step %d", p.Step)
		}
		seen[p.Step] = true
		r, ok := byStep[p.Step]
		if !ok {
			return "", fmt.Errorf("patch addresses step %d, which the spec does not contain", p.Step)
		}
		out = out[:r.start] + "\n" + strings.Trim(p.Code, "\n") + "\n" + out[r.end:]
	}
	return out, nil
}

// RemapPatches renumbers patches recorded against a composite program
// back onto the flow spec they belong to. A patch that lands inside
// the connection prelude cannot be written back to the flow spec and
// is discarded with a warning.
func RemapPatches(patches []models.SpecPatch, connectionStepCount int) []models.SpecPatch {
	if connectionStepCount <= 0 {
		return patches
	}
	out := make([]models.SpecPatch, 0, len(patches))
	for _, p := range patches {
		flowStep := p.Step - connectionStepCount
		if flowStep <= 0 {
			slog.Warn("Discarding patch that targets the connection prelude",
				"compositeStep", p.Step,
				"connectionSteps", connectionStepCount)
			continue
		}
		out = append(out, models.SpecPatch{Step: flowStep, Code: p.Code})
	}
	return out
}
