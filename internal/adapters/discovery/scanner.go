package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var _ ports.Discoverer = (*Scanner)(nil)

// Scanner implements ports.Discoverer by walking the repository for manifest
// files and parsing them concurrently.
type Scanner struct {
	walker *Walker
	log    ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker, log ports.Logger) *Scanner {
	return &Scanner{walker: walker, log: log}
}

type parsedManifest struct {
	path     string
	manifest Manifest
	sum      uint64
}

// Discover walks the repository rooted at root, parses every manifest file
// and assembles the project dependency set. The second return value is an
// xxhash fingerprint over all manifest contents in walk order, stable for an
// unchanged repository.
func (s *Scanner) Discover(
	ctx context.Context,
	root string,
	settings *domain.Settings,
) (*domain.DependencySet, string, error) {
	marker := settings.Manifest

	var paths []string
	for path := range s.walker.WalkFiles(root, settings.Ignore) {
		if filepath.Base(path) == marker {
			paths = append(paths, path)
		}
	}

	parsed := make([]parsedManifest, len(paths))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path) //nolint:gosec // paths come from the walk
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
			}

			var m Manifest
			if err := yaml.Unmarshal(data, &m); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
			}

			parsed[i] = parsedManifest{path: path, manifest: m, sum: xxhash.Sum64(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		_, _ = fmt.Fprintf(v, "%d manifests parsed\n", len(paths))
	}

	// Assemble in walk order so the set and the fingerprint are deterministic.
	set := domain.NewDependencySet()
	digest := xxhash.New()
	for _, p := range parsed {
		dir, err := filepath.Rel(root, filepath.Dir(p.path))
		if err != nil {
			return nil, "", zerr.With(zerr.Wrap(err, "failed to relativize manifest path"), "path", p.path)
		}
		dir = filepath.ToSlash(dir)

		name := p.manifest.Name
		if name == "" {
			if dir == "." {
				return nil, "", zerr.With(
					zerr.New("manifest at repository root must set a project name"),
					"path", p.path,
				)
			}
			name = dir
		}

		project := domain.Project{
			Name:         domain.NewInternedString(name),
			Dir:          domain.NewInternedString(dir),
			Dependencies: domain.NewInternedStrings(p.manifest.DependsOn),
		}
		if err := set.Add(&project); err != nil {
			return nil, "", zerr.With(err, "path", p.path)
		}

		_, _ = digest.WriteString(dir)
		_, _ = digest.Write([]byte{0})
		_, _ = fmt.Fprintf(digest, "%016x", p.sum)
		_, _ = digest.Write([]byte{0})
	}

	s.log.Info(fmt.Sprintf("discovered %d projects", set.Len()))

	return set, fmt.Sprintf("%016x", digest.Sum64()), nil
}
