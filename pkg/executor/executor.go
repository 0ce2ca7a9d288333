// Package executor turns a reconciliation plan into filesystem changes. It
// consumes the three FileState partitions, emits synthfs operations for the
// deletions and creations, applies ownership, and keeps the deployed-state
// manifest in step with what actually changed.
package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/manifest"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/arthur-debert/dotsync/pkg/render"
	"github.com/arthur-debert/dotsync/pkg/state"
)

// Executor applies a reconciliation plan.
type Executor struct {
	logger     zerolog.Logger
	paths      *paths.Paths
	renderer   *render.Renderer
	filesystem synthfs.FileSystem
	dryRun     bool
	force      bool
}

// New creates an executor. With dryRun set every phase logs what it would do
// and mutates nothing, including the manifest.
func New(p *paths.Paths, r *render.Renderer, dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("executor"),
		paths:      p,
		renderer:   r,
		filesystem: filesystem.NewOSFileSystem("/"),
		dryRun:     dryRun,
	}
}

// EnableForce makes the executor overwrite existing files on create and
// re-render templates that are already in place.
func (e *Executor) EnableForce(force bool) *Executor {
	e.force = force
	return e
}

// Apply runs the full plan: deletions first, then creations, then refresh of
// templates that are already deployed. The in-memory manifest tracks the
// phases that completed; persisting it is up to the caller.
func (e *Executor) Apply(st *state.FileState, man *manifest.Manifest) error {
	done := logging.LogOperationStart(e.logger, "apply")
	defer done()

	delSym, delTpl := st.DeletedFiles()
	newSym, newTpl := st.NewFiles()
	oldSym, oldTpl := st.OldFiles()

	e.logger.Info().
		Int("deleted", len(delSym)+len(delTpl)).
		Int("new", len(newSym)+len(newTpl)).
		Int("old", len(oldSym)+len(oldTpl)).
		Bool("dryRun", e.dryRun).
		Msg("applying reconciliation plan")

	if err := e.deletePhase(delSym, delTpl, man); err != nil {
		return err
	}
	if err := e.createPhase(newSym, newTpl, man); err != nil {
		return err
	}
	return e.refreshPhase(oldTpl)
}

// deletePhase removes artifacts that are deployed but no longer desired.
func (e *Executor) deletePhase(symlinks []state.SymlinkDescription, templates []state.TemplateDescription, man *manifest.Manifest) error {
	var ops []synthfs.Operation

	for _, d := range symlinks {
		if !e.ownsSymlink(d.Target.Target) {
			e.logger.Warn().
				Str("target", d.Target.Target).
				Msg("skipping deletion: target is not a dotsync symlink")
		} else {
			op, err := deleteOp(d.Target.Target)
			if err != nil {
				return err
			}
			ops = append(ops, op)
			e.logger.Info().Stringer("description", d).Msg("deleting symlink")
		}
		if !e.dryRun {
			man.RemoveSymlink(d.Source)
		}
	}

	for _, d := range templates {
		for _, path := range []string{d.Target.Target, d.Cache} {
			if _, err := os.Lstat(path); err != nil {
				continue
			}
			op, err := deleteOp(path)
			if err != nil {
				return err
			}
			ops = append(ops, op)
		}
		e.logger.Info().Stringer("description", d).Msg("deleting template")
		if !e.dryRun {
			man.RemoveTemplate(d.Source)
		}
	}

	if err := e.runOps(ops, "delete"); err != nil {
		return errors.Wrap(err, errors.ErrFileDelete, "delete phase failed")
	}
	return nil
}

// createPhase deploys artifacts that are desired but not yet on disk.
func (e *Executor) createPhase(symlinks []state.SymlinkDescription, templates []state.TemplateDescription, man *manifest.Manifest) error {
	var ops []synthfs.Operation

	// Artifacts routinely share a parent directory, but the pipeline rejects
	// duplicate operation IDs, so each directory gets exactly one create op.
	seenDirs := make(map[string]bool)
	addDirOp := func(dir string) error {
		if seenDirs[dir] {
			return nil
		}
		seenDirs[dir] = true
		dirOp, err := createDirOp(dir, 0755)
		if err != nil {
			return err
		}
		ops = append(ops, dirOp)
		return nil
	}

	for _, d := range symlinks {
		target := d.Target.Target
		if err := e.clearExisting(target); err != nil {
			return err
		}

		if err := addDirOp(filepath.Dir(target)); err != nil {
			return err
		}
		linkOp, err := createSymlinkOp(target, e.paths.SourcePath(d.Source))
		if err != nil {
			return err
		}
		ops = append(ops, linkOp)
		e.logger.Info().Stringer("description", d).Msg("creating symlink")
	}

	for _, d := range templates {
		content, err := e.renderTemplate(d)
		if err != nil {
			return err
		}

		for _, path := range []string{d.Cache, d.Target.Target} {
			if err := addDirOp(filepath.Dir(path)); err != nil {
				return err
			}
			fileOp, err := writeFileOp(path, []byte(content), 0644)
			if err != nil {
				return err
			}
			ops = append(ops, fileOp)
		}
		e.logger.Info().Stringer("description", d).Msg("rendering template")
	}

	if err := e.runOps(ops, "create"); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "create phase failed")
	}

	if e.dryRun {
		return nil
	}

	for _, d := range symlinks {
		if err := applyOwner(d.Target.Target, d.Target.Owner, true); err != nil {
			return err
		}
		man.AddSymlink(d.Source, d.Target.Target)
	}
	for _, d := range templates {
		if err := applyOwner(d.Target.Target, d.Target.Owner, false); err != nil {
			return err
		}
		man.AddTemplate(d.Source, d.Target.Target)
	}
	return nil
}

// refreshPhase re-renders templates that are already deployed. Without force
// old artifacts are left alone entirely; they are never deleted and
// recreated.
func (e *Executor) refreshPhase(templates []state.TemplateDescription) error {
	if !e.force || len(templates) == 0 {
		return nil
	}

	var ops []synthfs.Operation
	for _, d := range templates {
		content, err := e.renderTemplate(d)
		if err != nil {
			return err
		}
		for _, path := range []string{d.Cache, d.Target.Target} {
			fileOp, err := writeFileOp(path, []byte(content), 0644)
			if err != nil {
				return err
			}
			ops = append(ops, fileOp)
		}
		e.logger.Info().Stringer("description", d).Msg("refreshing template")
	}

	if err := e.runOps(ops, "refresh"); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "refresh phase failed")
	}

	if e.dryRun {
		return nil
	}
	for _, d := range templates {
		if err := applyOwner(d.Target.Target, d.Target.Owner, false); err != nil {
			return err
		}
	}
	return nil
}

// renderTemplate produces the final content for a template: render the
// source, then attach the configured append/prepend text.
func (e *Executor) renderTemplate(d state.TemplateDescription) (string, error) {
	content, err := e.renderer.RenderFile(e.paths.SourcePath(d.Source))
	if err != nil {
		return "", err
	}
	return d.ApplyActions(content), nil
}

// ownsSymlink reports whether path is a symlink pointing into the dotfiles
// root. Anything else was not deployed by dotsync and is left alone.
func (e *Executor) ownsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	dest, err := os.Readlink(path)
	if err != nil {
		return false
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	root := e.paths.DotfilesRoot() + string(filepath.Separator)
	return strings.HasPrefix(dest, root)
}

// clearExisting handles a pre-existing file at a create target. synthfs
// validation fails on occupied paths, so with force enabled the file is
// removed up front; without force it is an error.
func (e *Executor) clearExisting(target string) error {
	if _, err := os.Lstat(target); err != nil {
		return nil
	}
	if !e.force {
		return errors.Newf(errors.ErrFileWrite, "target %s already exists (use force to overwrite)", target)
	}
	if e.dryRun {
		e.logger.Info().Str("target", target).Msg("would remove existing file (force)")
		return nil
	}
	e.logger.Debug().Str("target", target).Msg("removing existing file (force)")
	if err := os.Remove(target); err != nil {
		return errors.Wrapf(err, errors.ErrFileDelete, "cannot remove existing file %s", target)
	}
	return nil
}

// runOps executes operations through a synthfs pipeline, or logs them in
// dry-run mode.
func (e *Executor) runOps(ops []synthfs.Operation, phase string) error {
	if len(ops) == 0 {
		return nil
	}
	if e.dryRun {
		e.logger.Info().
			Str("phase", phase).
			Int("operationCount", len(ops)).
			Msg("dry run: operations would be executed")
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range ops {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to add %s operation to pipeline", phase)
		}
	}

	e.logger.Debug().Str("phase", phase).Int("operationCount", len(ops)).Msg("executing operations")

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, e.filesystem)
	if result.GetError() != nil {
		return result.GetError()
	}
	return nil
}
