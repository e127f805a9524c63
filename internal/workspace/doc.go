// Package workspace stages build output next to its final location and
// promotes it with a rename, so readers never see a half-written site.
//
// A build writes into <output>_stage. Promote moves the previous output to
// <output>.prev, renames the stage into place and removes the backup.
// Abort removes the stage and leaves the previous output untouched.
package workspace
