// Package dashboard owns a set of charts built from configuration and
// coordinates them. It is structured into small files by concern:
//
//   - manager.go: Manager type, construction, Load, Ready, Close.
//   - config.go: ManagerConfig and NewWithConfig; headless wiring.
//   - build.go: option and series construction from config.ChartSpec.
//   - charts.go: per-chart operations (Create, List, Option, UpdateSeries, Destroy, Events).
//   - ops.go: cross-chart operations (Connect, Disconnect, Dispatch, Resize, themes).
//   - events.go, eventpub_memory.go, eventpub_log.go: lifecycle event publishing.
//   - metrics.go: Prometheus collectors.
//   - errors.go: error types and IsX helpers.
//
// All methods are safe for concurrent use; the manager serializes access to
// the charts it owns.
package dashboard
