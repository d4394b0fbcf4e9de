// Package chart wraps one rendering-library chart handle with the
// bookkeeping ECharts does not provide on its own. It is split by concern:
//
//   - chart.go: Chart type, construction, accessors, option/series updates, Destroy.
//   - events.go: per-chart event registry (On, Off, OffAll, FindEventList, EventList).
//   - resize.go: host element size observation driving Resize.
//   - sync.go: sync groups (Connect, Disconnect, GroupName, NewGroupID).
//   - errors.go: error types and IsX helpers.
//   - log.go: package logger.
//
// A Chart is not safe for concurrent use; it is meant to be driven from one
// goroutine (the UI event loop in a browser, or a caller holding a lock).
// Failures are logged and also returned as typed errors so callers can react
// without parsing logs. No method panics on an uninitialized or destroyed
// chart.
package chart
