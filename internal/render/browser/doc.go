// Package browser implements the render interfaces on top of the ECharts
// global and the DOM through syscall/js. It only builds for js/wasm.
package browser
