package domain

import "go.trai.ch/zerr"

// Stage is one batch of projects scheduled into a pipeline stage slot.
// All projects within a stage are safe to build in parallel; stages are
// executed by the pipeline from the highest index down to 1.
type Stage struct {
	Index    int
	Projects []InternedString
}

// Count returns the number of projects in the stage.
func (s Stage) Count() int {
	return len(s.Projects)
}

// EmitStages maps the leveled build order onto the pipeline's fixed stage
// slots and returns the batches ordered from slot `capacity` down to 1.
//
// Populated levels are packed densely from the top slot: the deepest level
// lands in slot `capacity`, the next populated level in the slot below it,
// and so on. A level without projects is skipped without consuming a slot,
// so the slot-to-level mapping is not fixed. Slots left over after all levels
// are placed are emitted as explicit empty batches.
//
// If the order's depth exceeds the capacity some dependency could never be
// scheduled; that is a configuration mismatch and fails the whole run.
func EmitStages(order LeveledBuildOrder, capacity int) ([]Stage, error) {
	depth := order.Depth()
	if depth > capacity {
		return nil, zerr.With(zerr.With(zerr.With(
			ErrCapacityExceeded,
			"depth", depth),
			"capacity", capacity),
			"hint", "regenerate the pipeline configuration with more stage slots")
	}

	stages := make([]Stage, 0, capacity)
	step := capacity
	for level := depth; level >= 1; level-- {
		projects := order.At(level)
		if len(projects) == 0 {
			continue
		}
		stages = append(stages, Stage{Index: step, Projects: projects})
		step--
	}
	for ; step >= 1; step-- {
		stages = append(stages, Stage{Index: step, Projects: []InternedString{}})
	}

	return stages, nil
}
