// Package tferrors collects the error kinds spec §7 says "all surface to the
// Builder caller; none are handled internally by retry." Centralizing them
// here lets every package (resources, mapcache, element, mapbuild) return
// wrapped errors callers can test with errors.Is/errors.As regardless of
// which package actually detected the failure.
package tferrors

import "fmt"

// Sentinel errors for errors.Is comparisons. Use the richer *Error types
// below when positional detail (a path, an element name) matters.
var (
	ErrDuplicateResource = fmt.Errorf("tileforge: duplicate resource")
	ErrMissingResource   = fmt.Errorf("tileforge: missing resource")
	ErrEmptyDistribution = fmt.Errorf("tileforge: empty distribution")
	ErrShapeMismatch     = fmt.Errorf("tileforge: shape mismatch")
	ErrAssetLoadFailed   = fmt.Errorf("tileforge: asset load failed")
	ErrBuildAborted      = fmt.Errorf("tileforge: build aborted")
	ErrInvariantViolated = fmt.Errorf("tileforge: invariant violated")
)

// MissingResourceError reports an element referencing a resource id that
// was never loaded for it.
type MissingResourceError struct {
	Element    string
	ResourceID string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("%s: element %q has no loaded resource %q", ErrMissingResource, e.Element, e.ResourceID)
}

func (e *MissingResourceError) Unwrap() error { return ErrMissingResource }

// AssetLoadFailedError reports an image path that could not be resolved.
type AssetLoadFailedError struct {
	ResourceID string
	Path       string
	Cause      error
}

func (e *AssetLoadFailedError) Error() string {
	return fmt.Sprintf("%s: resource %q path %q: %v", ErrAssetLoadFailed, e.ResourceID, e.Path, e.Cause)
}

func (e *AssetLoadFailedError) Unwrap() error { return ErrAssetLoadFailed }

// BuildAbortedError reports an element that signaled it could not complete.
type BuildAbortedError struct {
	Element string
	Cause   error
}

func (e *BuildAbortedError) Error() string {
	return fmt.Sprintf("%s: element %q: %v", ErrBuildAborted, e.Element, e.Cause)
}

func (e *BuildAbortedError) Unwrap() error { return ErrBuildAborted }

// ShapeMismatchError reports Cache.Assign called across incompatible
// dimensions.
type ShapeMismatchError struct {
	Got, Want [3]int // width, height, layers
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: got %dx%dx%d, want %dx%dx%d", ErrShapeMismatch,
		e.Got[0], e.Got[1], e.Got[2], e.Want[0], e.Want[1], e.Want[2])
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }
