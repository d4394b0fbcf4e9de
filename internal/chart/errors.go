package chart

import "errors"

type elementNotFoundError struct{ id string }

func (e elementNotFoundError) Error() string { return "element not found: #" + e.id }

// ErrElementNotFound is returned by New when the target element is absent.
func ErrElementNotFound(id string) error { return elementNotFoundError{id: id} }

// IsElementNotFound reports whether err indicates a missing target element.
func IsElementNotFound(err error) bool {
	var e elementNotFoundError
	return errors.As(err, &e)
}

type notInitializedError struct{}

func (notInitializedError) Error() string { return "chart is not initialized" }

// IsNotInitialized reports whether an operation ran on a chart that was
// never created.
func IsNotInitialized(err error) bool {
	var e notInitializedError
	return errors.As(err, &e)
}

type disposedError struct{ id string }

func (e disposedError) Error() string { return "chart has been destroyed: #" + e.id }

// IsDisposed reports whether an operation ran after Destroy.
func IsDisposed(err error) bool {
	var e disposedError
	return errors.As(err, &e)
}

type emptySeriesError struct{}

func (emptySeriesError) Error() string { return "no series data to update" }

// IsEmptySeries reports whether UpdateSeriesData got an empty list.
func IsEmptySeries(err error) bool {
	var e emptySeriesError
	return errors.As(err, &e)
}

type noMembersError struct{}

func (noMembersError) Error() string { return "sync connect needs at least one chart" }

// IsNoMembers reports whether Connect was called without charts.
func IsNoMembers(err error) bool {
	var e noMembersError
	return errors.As(err, &e)
}

type noGroupsError struct{}

func (noGroupsError) Error() string { return "sync disconnect needs a group name or chart" }

// IsNoGroups reports whether Disconnect was called without targets.
func IsNoGroups(err error) bool {
	var e noGroupsError
	return errors.As(err, &e)
}
