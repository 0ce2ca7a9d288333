package executor

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

// Builders for the synthfs operations the executor emits. synthfs works on
// paths relative to the filesystem root, so every builder converts first.

func relToRoot(path string) (string, error) {
	rel, err := filepath.Rel("/", path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", path)
	}
	return rel, nil
}

func createDirOp(target string, mode fs.FileMode) (synthfs.Operation, error) {
	relPath, err := relToRoot(target)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", target))
	op := operations.NewCreateDirectoryOperation(opID, relPath)
	op.SetItem(&directoryItem{path: relPath, mode: mode})
	return synthfs.NewOperationsPackageAdapter(op), nil
}

func writeFileOp(target string, content []byte, mode fs.FileMode) (synthfs.Operation, error) {
	relPath, err := relToRoot(target)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", target))
	op := operations.NewCreateFileOperation(opID, relPath)
	op.SetItem(&fileItem{path: relPath, content: content, mode: mode})
	return synthfs.NewOperationsPackageAdapter(op), nil
}

func createSymlinkOp(linkPath, linkTarget string) (synthfs.Operation, error) {
	relPath, err := relToRoot(linkPath)
	if err != nil {
		return nil, err
	}
	relTarget, err := relToRoot(linkTarget)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("symlink-%s", linkPath))
	op := operations.NewCreateSymlinkOperation(opID, relPath)
	op.SetDescriptionDetail("target", relTarget)
	op.SetItem(&symlinkItem{path: relPath, target: relTarget})
	return synthfs.NewOperationsPackageAdapter(op), nil
}

func deleteOp(target string) (synthfs.Operation, error) {
	relPath, err := relToRoot(target)
	if err != nil {
		return nil, err
	}

	opID := core.OperationID(fmt.Sprintf("delete-%s", target))
	op := operations.NewDeleteOperation(opID, relPath)
	return synthfs.NewOperationsPackageAdapter(op), nil
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

// symlinkItem implements the interface needed for symlink operations
type symlinkItem struct {
	path   string
	target string
}

func (s *symlinkItem) Path() string   { return s.path }
func (s *symlinkItem) Type() string   { return "symlink" }
func (s *symlinkItem) Target() string { return s.target }
