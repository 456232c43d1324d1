// Package app implements the application layer for fanout.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/fanout/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic: one planning run from settings
// to published result variables.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   ports.Discoverer
	mapper       ports.ChangeMapper
	changeSource ports.ChangeSource
	planner      *planner.Planner
	publisher    ports.ResultPublisher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer ports.Discoverer,
	mapper ports.ChangeMapper,
	changeSource ports.ChangeSource,
	pl *planner.Planner,
	publisher ports.ResultPublisher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discoverer:   discoverer,
		mapper:       mapper,
		changeSource: changeSource,
		planner:      pl,
		publisher:    publisher,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// RunOptions carries the per-invocation inputs supplied by the CLI.
type RunOptions struct {
	// Root is the repository checkout to plan for.
	Root string

	// ChangesPath points at a newline-separated list of modified file paths.
	// Empty means no change information is available.
	ChangesPath string

	// GitBase is the ref to diff the working tree against when no explicit
	// change list is supplied.
	GitBase string

	// ForceAll selects the whole project universe regardless of changes.
	ForceAll bool

	// Capacity overrides the settings' stage slot count when positive.
	Capacity int
}

// Run executes one planning run and publishes the result.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defer func() {
		_ = a.telemetry.Close()
	}()

	settings, err := a.configLoader.Load(opts.Root)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	capacity := settings.Capacity
	if opts.Capacity > 0 {
		capacity = opts.Capacity
	}

	ctx, vertex := a.telemetry.Record(ctx, "discover projects")
	set, fingerprint, err := a.discoverer.Discover(ctx, opts.Root, settings)
	if err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "project discovery failed")
	}
	vertex.Complete(nil)

	if set.Len() == 0 {
		return zerr.With(domain.ErrNoProjects, "root", opts.Root)
	}

	selection, err := a.selectProjects(ctx, opts, settings, set)
	if err != nil {
		return err
	}

	plan, err := a.planner.Plan(ctx, set, selection, capacity, fingerprint)
	if err != nil {
		return zerr.Wrap(err, "planning failed")
	}

	if err := a.publisher.Publish(ctx, plan); err != nil {
		return zerr.Wrap(err, "failed to publish plan")
	}

	a.logger.Info(fmt.Sprintf(
		"planned %d of %d projects at depth %d across %d stage slots",
		len(plan.Projects), set.Len(), plan.Order.Depth(), plan.Capacity,
	))
	return nil
}

// selectProjects decides the directly selected set: an explicit override or
// the full universe when configured, otherwise whatever the changed files
// touch.
func (a *App) selectProjects(
	ctx context.Context,
	opts RunOptions,
	settings *domain.Settings,
	set *domain.DependencySet,
) ([]domain.InternedString, error) {
	if opts.ForceAll || settings.AlwaysBuildAllProjects {
		return set.Names(), nil
	}

	if len(settings.Projects) > 0 {
		selection := make([]domain.InternedString, 0, len(settings.Projects))
		for _, name := range settings.Projects {
			interned := domain.NewInternedString(name)
			if !set.Contains(interned) {
				return nil, zerr.With(domain.ErrUnknownProject, "project", name)
			}
			selection = append(selection, interned)
		}
		return selection, nil
	}

	changed, err := a.changedPaths(ctx, opts)
	if err != nil {
		return nil, err
	}
	if changed == nil {
		a.logger.Warn("no change information supplied; planning an empty build")
		return nil, nil
	}

	selection, buildAll := a.mapper.Map(changed, settings.BuildAllPatterns, set)
	if buildAll {
		a.logger.Info("a changed file matches a build-all pattern; selecting every project")
		return set.Names(), nil
	}
	return selection, nil
}

// changedPaths resolves the changed-file list: an explicit file takes
// precedence over a git diff base. A nil result means no source was supplied;
// an empty non-nil result means the source reported a clean tree.
func (a *App) changedPaths(ctx context.Context, opts RunOptions) ([]string, error) {
	if opts.ChangesPath != "" {
		paths, err := readChangedPaths(opts.ChangesPath)
		if err != nil {
			return nil, err
		}
		if paths == nil {
			paths = []string{}
		}
		return paths, nil
	}

	if opts.GitBase != "" {
		paths, err := a.changeSource.Changes(ctx, opts.Root, opts.GitBase)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to determine changed files")
		}
		if paths == nil {
			paths = []string{}
		}
		return paths, nil
	}

	return nil, nil
}

// readChangedPaths reads a newline-separated path list, skipping blanks.
// The conventional "-" reads from stdin.
func readChangedPaths(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // path is provided by user
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read changed-file list")
		}
		defer f.Close() //nolint:errcheck // Best effort close of a read-only file
		r = f
	}

	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan changed-file list")
	}
	return paths, nil
}
