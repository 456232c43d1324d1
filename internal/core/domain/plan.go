package domain

// Plan is the complete, immutable result of one planning run. It carries
// everything the publisher needs; nothing in it persists between runs.
type Plan struct {
	// Projects is the final build set (selection plus build-also closure),
	// first-seen order preserved.
	Projects []InternedString

	// Dependencies maps every project in the build set to its direct
	// dependency list from the manifest.
	Dependencies map[string][]string

	// Order assigns each project in the build set to its dependency level.
	Order LeveledBuildOrder

	// Stages are the emitted batches, ordered from slot Capacity down to 1.
	Stages []Stage

	// Capacity is the pipeline's static stage slot count used for emission.
	Capacity int

	// Fingerprint is a stable digest of all manifest contents, for callers
	// that cache plans.
	Fingerprint string
}
