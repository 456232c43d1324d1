package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/cmd/fanout/commands"
	"go.trai.ch/fanout/internal/adapters/changes"
	"go.trai.ch/fanout/internal/adapters/config"
	"go.trai.ch/fanout/internal/adapters/discovery"
	"go.trai.ch/fanout/internal/adapters/gitdiff"
	"go.trai.ch/fanout/internal/adapters/logger"
	"go.trai.ch/fanout/internal/adapters/pipeline"
	"go.trai.ch/fanout/internal/adapters/telemetry"
	"go.trai.ch/fanout/internal/app"
	"go.trai.ch/fanout/internal/engine/planner"
)

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	log := logger.New()
	publisher := pipeline.NewPublisher()
	output := &bytes.Buffer{}
	publisher.SetOutput(output)

	a := app.New(
		config.NewLoader(log),
		discovery.NewScanner(discovery.NewWalker(), log),
		changes.NewMapper(),
		gitdiff.NewDiffer(log),
		planner.NewPlanner(telemetry.NewNoOp()),
		publisher,
		telemetry.NewNoOp(),
		log,
	)
	return commands.New(a), output
}

func writeRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write := func(rel, content string) {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
	write("fanout.yaml", "capacity: 3\n")
	write("lib/project.yaml", "name: lib\n")
	write("svc/project.yaml", "name: svc\ndependsOn: [lib]\n")
	return root
}

func TestPlan_WithChanges(t *testing.T) {
	cli, output := newCLI(t)
	root := writeRepo(t)

	changesPath := filepath.Join(root, "changes.txt")
	require.NoError(t, os.WriteFile(changesPath, []byte("lib/util.go\n"), 0o600))

	cli.SetArgs([]string{"plan", root, "--changes", changesPath})
	require.NoError(t, cli.Execute(context.Background()))

	require.Contains(t, output.String(), `ProjectsJson=["lib","svc"]`)
}

func TestPlan_All(t *testing.T) {
	cli, output := newCLI(t)
	root := writeRepo(t)

	cli.SetArgs([]string{"plan", root, "--all"})
	require.NoError(t, cli.Execute(context.Background()))

	require.Contains(t, output.String(), `ProjectsJson=["lib","svc"]`)
}

func TestPlan_CapacityOverride(t *testing.T) {
	cli, output := newCLI(t)
	root := writeRepo(t)

	cli.SetArgs([]string{"plan", root, "--all", "--capacity", "4"})
	require.NoError(t, cli.Execute(context.Background()))

	require.Contains(t, output.String(), `projects4Json=["svc"]`)
}

func TestPlan_MissingSettings(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"plan", t.TempDir()})
	require.Error(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}
