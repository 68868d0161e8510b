package core

var (
	// TracesInitialCap is the initial capacity for Traces buffers.
	TracesInitialCap = 16

	// EmittedInitialCap is the initial capacity for slices of
	// emitted messages.
	EmittedInitialCap = 16
)

// Traces holds trace messages.
type Traces struct {
	Messages []interface{} `json:"messages,omitempty" yaml:",omitempty"`
}

// NewTraces creates an initialized Traces.
func NewTraces() *Traces {
	return &Traces{
		Messages: make([]interface{}, 0, TracesInitialCap),
	}
}

func (ts *Traces) Add(xs ...interface{}) {
	ts.Messages = append(ts.Messages, xs...)
}

// Events contains messages emitted by actions along with Traces.
type Events struct {
	Emitted []interface{} `json:"emitted,omitempty" yaml:",omitempty"`
	Traces  *Traces       `json:"traces,omitempty" yaml:",omitempty"`
}

func newEvents() *Events {
	return &Events{
		Emitted: make([]interface{}, 0, EmittedInitialCap),
		Traces:  NewTraces(),
	}
}

// AddEmitted adds the given thing to the list of emitted messages.
func (es *Events) AddEmitted(x interface{}) {
	es.Emitted = append(es.Emitted, x)
}

// AddTrace adds the given thing to the list of traces.
func (es *Events) AddTrace(x interface{}) {
	es.Traces.Add(x)
}

// AddEvents adds the given Events' emitted messages and traces to
// the receiving Events.
func (es *Events) AddEvents(more *Events) {
	if more == nil {
		return
	}
	for _, x := range more.Emitted {
		es.AddEmitted(x)
	}
	for _, x := range more.Traces.Messages {
		es.AddTrace(x)
	}
}

// Outcome is what running a predicate or action source produces: a
// Result value plus any Events gathered along the way.
//
// For a predicate source, Result should be a boolean.  For an action
// source, Result is usually ignored; the action speaks through its
// side effects and its emitted messages.
type Outcome struct {
	Result interface{}
	*Events
}

// NewOutcome makes an Outcome around the given result.
func NewOutcome(result interface{}) *Outcome {
	return &Outcome{
		Result: result,
		Events: newEvents(),
	}
}
