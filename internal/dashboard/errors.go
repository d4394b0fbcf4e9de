package dashboard

type chartNotFoundError struct{ id string }

func (e chartNotFoundError) Error() string { return "chart not found: " + e.id }

// ErrChartNotFound returns an error for an unknown chart id.
func ErrChartNotFound(id string) error { return chartNotFoundError{id: id} }

// IsChartNotFound reports whether err indicates an unknown chart id.
func IsChartNotFound(err error) bool {
	_, ok := err.(chartNotFoundError)
	return ok
}

type chartExistsError struct{ id string }

func (e chartExistsError) Error() string { return "chart already exists: " + e.id }

// IsChartExists reports whether err indicates a duplicate chart id.
func IsChartExists(err error) bool {
	_, ok := err.(chartExistsError)
	return ok
}

// unsupportedError signals an operation the configured renderer or host
// cannot perform (e.g. simulated dispatch in a browser).
type unsupportedError struct{ op string }

func (e unsupportedError) Error() string { return "operation not supported by renderer: " + e.op }

// IsUnsupported reports whether err indicates an unsupported operation.
func IsUnsupported(err error) bool {
	_, ok := err.(unsupportedError)
	return ok
}

type themeNotFoundError struct{ name string }

func (e themeNotFoundError) Error() string { return "theme not registered: " + e.name }

// IsThemeNotFound reports whether err indicates an unregistered theme.
func IsThemeNotFound(err error) bool {
	_, ok := err.(themeNotFoundError)
	return ok
}
