// Package state implements the reconciliation core of dotsync: it compares
// the desired deployment state (from configuration) against the existing
// deployed state (from the manifest) and partitions every artifact into one
// of three outcomes: deleted, new, or old (already in place).
//
// Two descriptions refer to the same artifact when their source path and
// target path are equal. Ownership and template decoration are deliberately
// not part of that identity: changing an owner or an append/prepend block
// never causes a delete+create cycle on its own.
package state
