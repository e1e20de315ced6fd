package state

type EventType string

const (
	EventPointerDown  EventType = "down"
	EventPointerMove  EventType = "move"
	EventPointerUp    EventType = "up"
	EventDoubleClick  EventType = "dblclick"
	EventPointerLeave EventType = "leave"

	EventUndo         EventType = "undo"
	EventClear        EventType = "clear"
	EventToggleRandom EventType = "random"
	EventSelectColor  EventType = "color"
	EventSetTheme     EventType = "theme"
	EventCycleTheme   EventType = "cycle_theme"
	EventExport       EventType = "export"
	EventExportPDF    EventType = "pdf"

	// EventExported reports the outcome of an export requested by an Effect.
	EventExported EventType = "exported"
)

// Event is one input to Reduce. Only the fields relevant to Type are read.
type Event struct {
	Type  EventType
	Pos   Point
	Color string
	Theme Theme
	Path  string // EventExported: written file
	Err   error  // EventExported: write failure
}

func PointerDown(x, y float64) Event  { return Event{Type: EventPointerDown, Pos: Point{x, y}} }
func PointerMove(x, y float64) Event  { return Event{Type: EventPointerMove, Pos: Point{x, y}} }
func PointerUp(x, y float64) Event    { return Event{Type: EventPointerUp, Pos: Point{x, y}} }
func DoubleClick(x, y float64) Event  { return Event{Type: EventDoubleClick, Pos: Point{x, y}} }
func SelectColor(hex string) Event    { return Event{Type: EventSelectColor, Color: hex} }
func SetTheme(t Theme) Event          { return Event{Type: EventSetTheme, Theme: t} }
func Exported(path string, err error) Event {
	return Event{Type: EventExported, Path: path, Err: err}
}

type ExportKind int

const (
	ExportNone ExportKind = iota
	ExportPNG
	ExportPDF
)

// Effect is the side-effecting part of a reduction, carried out by the front
// end after the new state has been rendered.
type Effect struct {
	Notice *Notice
	Export ExportKind
}
