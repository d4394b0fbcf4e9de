package chart

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs the logger used for chart diagnostics.
func SetLogger(l zerolog.Logger) { logger = l }
