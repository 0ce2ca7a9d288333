package executor

import (
	"os"
	"os/user"
	"strconv"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/types"
)

// applyOwner chowns path to the configured owner. A nil owner is a no-op.
// lchown must be true for symlinks so the link itself is chowned rather than
// its referent.
func applyOwner(path string, owner *types.Owner, lchown bool) error {
	if owner == nil {
		return nil
	}

	u, err := user.Lookup(owner.User)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOwnerApply, "unknown user %q", owner.User)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOwnerApply, "non-numeric uid %q for user %q", u.Uid, owner.User)
	}

	gid := -1
	if owner.Group != "" {
		g, err := user.LookupGroup(owner.Group)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOwnerApply, "unknown group %q", owner.Group)
		}
		gid, err = strconv.Atoi(g.Gid)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOwnerApply, "non-numeric gid %q for group %q", g.Gid, owner.Group)
		}
	}

	chown := os.Chown
	if lchown {
		chown = os.Lchown
	}
	if err := chown(path, uid, gid); err != nil {
		return errors.Wrapf(err, errors.ErrOwnerApply, "cannot chown %s to %s", path, owner)
	}
	return nil
}
