package discovery_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/fanout/internal/adapters/discovery"
	"go.trai.ch/fanout/internal/adapters/logger"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

func writeManifest(t *testing.T, root, dir, content string) {
	t.Helper()
	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(full, "project.yaml"), []byte(content), 0o600))
}

func newScanner() *discovery.Scanner {
	return discovery.NewScanner(discovery.NewWalker(), logger.New())
}

func testSettings() *domain.Settings {
	return &domain.Settings{Capacity: 5, Manifest: "project.yaml"}
}

func TestDiscover_BuildsDependencySet(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "libs/core", "name: core\n")
	writeManifest(t, root, "services/api", "name: api\ndependsOn: [core]\n")
	writeManifest(t, root, "services/web", "name: web\ndependsOn: [api]\n")

	set, fingerprint, err := newScanner().Discover(context.Background(), root, testSettings())
	require.NoError(t, err)

	require.Equal(t, 3, set.Len())
	require.NotEmpty(t, fingerprint)

	api, ok := set.Project(domain.NewInternedString("api"))
	require.True(t, ok)
	require.Equal(t, "services/api", api.Dir.String())
	require.Equal(t, []domain.InternedString{domain.NewInternedString("core")}, api.Dependencies)

	require.NoError(t, set.Validate())
}

func TestDiscover_NameDefaultsToDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "tools/gen", "dependsOn: []\n")

	set, _, err := newScanner().Discover(context.Background(), root, testSettings())
	require.NoError(t, err)

	_, ok := set.Project(domain.NewInternedString("tools/gen"))
	require.True(t, ok)
}

func TestDiscover_RootManifestRequiresName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "project.yaml"), []byte("dependsOn: []\n"), 0o600))

	_, _, err := newScanner().Discover(context.Background(), root, testSettings())
	require.Error(t, err)
	require.Contains(t, err.Error(), "project name")
}

func TestDiscover_IgnoredDirectoriesAreSkipped(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "libs/core", "name: core\n")
	writeManifest(t, root, "node_modules/pkg", "name: vendored\n")

	settings := testSettings()
	settings.Ignore = []string{"node_modules"}

	set, _, err := newScanner().Discover(context.Background(), root, settings)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
}

func TestDiscover_DuplicateNamesAreFatal(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "a", "name: core\n")
	writeManifest(t, root, "b", "name: core\n")

	_, _, err := newScanner().Discover(context.Background(), root, testSettings())
	require.ErrorIs(t, err, domain.ErrDuplicateProject)
}

func TestDiscover_FingerprintIsStable(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "libs/core", "name: core\n")
	writeManifest(t, root, "services/api", "name: api\ndependsOn: [core]\n")

	scanner := newScanner()
	_, first, err := scanner.Discover(context.Background(), root, testSettings())
	require.NoError(t, err)
	_, second, err := scanner.Discover(context.Background(), root, testSettings())
	require.NoError(t, err)
	require.Equal(t, first, second)

	// A manifest edit must change the fingerprint.
	writeManifest(t, root, "services/api", "name: api\ndependsOn: [core]\n# rev2\n")
	_, third, err := scanner.Discover(context.Background(), root, testSettings())
	require.NoError(t, err)
	require.NotEqual(t, first, third)
}

type captureVertex struct {
	buf bytes.Buffer
}

func (v *captureVertex) Write(p []byte) (int, error) { return v.buf.Write(p) }

func (v *captureVertex) Complete(_ error) {}

func TestDiscover_ReportsToPhaseVertex(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "libs/core", "name: core\n")
	writeManifest(t, root, "services/api", "name: api\ndependsOn: [core]\n")

	capture := &captureVertex{}
	ctx := ports.ContextWithVertex(context.Background(), capture)

	_, _, err := newScanner().Discover(ctx, root, testSettings())
	require.NoError(t, err)
	require.Contains(t, capture.buf.String(), "2 manifests parsed")
}

func TestDiscover_MalformedManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "libs/core", "name: [broken\n")

	_, _, err := newScanner().Discover(context.Background(), root, testSettings())
	require.Error(t, err)
}

func TestDiscover_EmptyRepository(t *testing.T) {
	set, _, err := newScanner().Discover(context.Background(), t.TempDir(), testSettings())
	require.NoError(t, err)
	require.Equal(t, 0, set.Len())
}
