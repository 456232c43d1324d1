package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestComputeLevels_Chain(t *testing.T) {
	// B depends on A, C depends on B.
	s := buildSet(t, []string{"A", "B", "C"}, map[string][]string{
		"B": {"A"},
		"C": {"B"},
	})

	order, err := domain.ComputeLevels(names("A", "B", "C"), s)
	require.NoError(t, err)

	require.Equal(t, 3, order.Depth())
	require.Equal(t, []string{"A"}, asStrings(order.At(1)))
	require.Equal(t, []string{"B"}, asStrings(order.At(2)))
	require.Equal(t, []string{"C"}, asStrings(order.At(3)))
}

func TestComputeLevels_LevelIsOnePlusMaxDependencyLevel(t *testing.T) {
	s := buildSet(t, []string{"core", "util", "api", "web"}, map[string][]string{
		"api": {"core", "util"},
		"web": {"api", "util"},
	})

	projects := names("core", "util", "api", "web")
	order, err := domain.ComputeLevels(projects, s)
	require.NoError(t, err)

	levelOf := make(map[string]int)
	for level := 1; level <= order.Depth(); level++ {
		for _, name := range order.At(level) {
			levelOf[name.String()] = level
		}
	}

	for _, name := range projects {
		expected := 1
		for _, dep := range s.DependenciesOf(name) {
			if l := levelOf[dep.String()]; l+1 > expected {
				expected = l + 1
			}
		}
		require.Equal(t, expected, levelOf[name.String()],
			"level of %s must be one plus the max level among its dependencies", name)
	}
}

func TestComputeLevels_IsolatedProjectsStayAtLevelOne(t *testing.T) {
	s := buildSet(t, []string{"A", "B", "lonely"}, map[string][]string{
		"B": {"A"},
	})

	order, err := domain.ComputeLevels(names("A", "B", "lonely"), s)
	require.NoError(t, err)

	require.Equal(t, 2, order.Depth(), "isolated projects never inflate depth")
	require.Equal(t, []string{"A", "lonely"}, asStrings(order.At(1)))
}

func TestComputeLevels_DependenciesOutsideSetAreAlreadyBuilt(t *testing.T) {
	s := buildSet(t, []string{"A", "B", "C"}, map[string][]string{
		"B": {"A"},
		"C": {"B"},
	})

	// Only C selected: its dependency chain is outside the build set.
	order, err := domain.ComputeLevels(names("C"), s)
	require.NoError(t, err)

	require.Equal(t, 1, order.Depth())
	require.Equal(t, []string{"C"}, asStrings(order.At(1)))
}

func TestComputeLevels_TotalLookup(t *testing.T) {
	s := buildSet(t, []string{"A"}, nil)

	order, err := domain.ComputeLevels(names("A"), s)
	require.NoError(t, err)

	require.Nil(t, order.At(2), "absent level reads as empty")
	require.Nil(t, order.At(0))
}

func TestComputeLevels_Cycle(t *testing.T) {
	// A -> B -> A. Self edges are rejected at Add, so the cycle is built from
	// two projects.
	s := domain.NewDependencySet()
	addProject(t, s, "A", "B")
	addProject(t, s, "B", "A")
	addProject(t, s, "C")

	_, err := domain.ComputeLevels(names("A", "B", "C"), s)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCycleDetected)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	require.Equal(t, "A, B", zErr.Metadata()["unresolved"],
		"only the unresolved projects are implicated")
}

func TestComputeLevels_Deterministic(t *testing.T) {
	s := buildSet(t, []string{"core", "util", "api", "web", "cli"}, map[string][]string{
		"api": {"core"},
		"web": {"api", "util"},
		"cli": {"core", "util"},
	})

	projects := names("core", "util", "api", "web", "cli")

	first, err := domain.ComputeLevels(projects, s)
	require.NoError(t, err)
	second, err := domain.ComputeLevels(projects, s)
	require.NoError(t, err)

	require.Equal(t, first.Depth(), second.Depth())
	for level := 1; level <= first.Depth(); level++ {
		require.Equal(t, asStrings(first.At(level)), asStrings(second.At(level)))
	}
}

func TestComputeLevels_Empty(t *testing.T) {
	s := domain.NewDependencySet()

	order, err := domain.ComputeLevels(nil, s)
	require.NoError(t, err)
	require.Equal(t, 0, order.Depth())
}
