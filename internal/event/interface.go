package event

// Reporter receives progress events as they happen
type Reporter interface {
	Report(evt Event)
}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(evt Event)

// Report calls f(evt)
func (f ReporterFunc) Report(evt Event) {
	f(evt)
}

// Discard is a Reporter that drops every event
var Discard Reporter = ReporterFunc(func(Event) {})
