package state

import (
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// FileState holds the desired and existing deployment state for one
// reconciliation pass. Build it with New, then query the three partitions;
// it is never mutated after construction and every query recomputes from the
// same immutable sets, so repeated calls return identical results.
type FileState struct {
	desiredSymlinks   descriptionSet[SymlinkDescription]
	desiredTemplates  descriptionSet[TemplateDescription]
	existingSymlinks  descriptionSet[SymlinkDescription]
	existingTemplates descriptionSet[TemplateDescription]
}

// New builds a FileState from the raw mappings. Desired-state maps carry full
// target descriptors from configuration. Existing-state maps only know
// source and target paths, so they are lifted into descriptions with no
// owner and no append/prepend; identity ignores those fields, so nothing is
// lost for classification. cacheRoot namespaces each template's rendered
// output by its source path.
func New(
	desiredSymlinks map[string]types.SymbolicTarget,
	desiredTemplates map[string]types.TemplateTarget,
	existingSymlinks map[string]string,
	existingTemplates map[string]string,
	cacheRoot string,
) *FileState {
	fs := &FileState{}

	for source, target := range desiredSymlinks {
		fs.desiredSymlinks.insert(SymlinkDescription{Source: source, Target: target})
	}
	for source, target := range desiredTemplates {
		fs.desiredTemplates.insert(NewTemplateDescription(source, target, cacheRoot))
	}
	for source, target := range existingSymlinks {
		fs.existingSymlinks.insert(SymlinkDescription{
			Source: source,
			Target: types.SymbolicTarget{Target: target},
		})
	}
	for source, target := range existingTemplates {
		fs.existingTemplates.insert(NewTemplateDescription(
			source, types.TemplateTarget{Target: target}, cacheRoot))
	}

	logger := logging.GetLogger("state")
	logger.Debug().
		Int("desiredSymlinks", len(fs.desiredSymlinks.items)).
		Int("desiredTemplates", len(fs.desiredTemplates.items)).
		Int("existingSymlinks", len(fs.existingSymlinks.items)).
		Int("existingTemplates", len(fs.existingTemplates.items)).
		Msg("built file state")

	return fs
}

// DeletedFiles returns the artifacts that are deployed but no longer desired,
// ordered by (source, target). The executor must remove these from disk.
func (fs *FileState) DeletedFiles() ([]SymlinkDescription, []TemplateDescription) {
	return fs.existingSymlinks.difference(&fs.desiredSymlinks),
		fs.existingTemplates.difference(&fs.desiredTemplates)
}

// NewFiles returns the artifacts that are desired but not yet deployed,
// ordered by (source, target). The executor must create these.
func (fs *FileState) NewFiles() ([]SymlinkDescription, []TemplateDescription) {
	return fs.desiredSymlinks.difference(&fs.existingSymlinks),
		fs.desiredTemplates.difference(&fs.existingTemplates)
}

// OldFiles returns the artifacts present in both desired and existing state,
// ordered by (source, target). These are already deployed under their current
// identity; the executor may refresh content but must never delete and
// recreate them. The returned descriptions carry the desired-state metadata.
//
// Known limitation: existing-state descriptions never carry an owner, so an
// ownership change on an otherwise unchanged artifact still classifies as
// old. Detecting that drift is up to the consumer of this partition.
func (fs *FileState) OldFiles() ([]SymlinkDescription, []TemplateDescription) {
	return fs.desiredSymlinks.intersection(&fs.existingSymlinks),
		fs.desiredTemplates.intersection(&fs.existingTemplates)
}
