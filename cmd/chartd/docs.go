package main

// General API documentation for swaggo. Run `swag init -g cmd/chartd/docs.go` to regenerate docs.
//
// @title           chartd API
// @version         1.0
// @description     HTTP API for a server-managed ECharts dashboard.
//
// @contact.name   chartd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
