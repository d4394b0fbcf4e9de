package dashboard

import "github.com/rs/zerolog"

// LogPublisher writes every event as a structured log line.
type LogPublisher struct {
	Logger zerolog.Logger
}

func (p LogPublisher) Publish(e Event) {
	ev := p.Logger.Info().Str("event", e.Name)
	if e.ChartID != "" {
		ev = ev.Str("chart", e.ChartID)
	}
	if len(e.Fields) > 0 {
		ev = ev.Fields(e.Fields)
	}
	ev.Msg("dashboard event")
}
