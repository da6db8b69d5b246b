package decode

// Parser is the frame-parsing capability the orchestrator drives. The grammar
// behind it is opaque; the orchestrator only sequences bytes, watches the
// error counter, and reads the decoded command id.
type Parser interface {
	// Reset resynchronizes to header sync without clearing the error counter.
	Reset()
	// ProcessByte feeds one byte and reports whether it completed a frame.
	ProcessByte(c byte) bool
	// ErrorCount reports faults seen so far; it never decreases.
	ErrorCount() int
	// CommandID returns the id of the last fully decoded command.
	CommandID() uint8
}

// Output values shared by both result scalars.
const (
	// GatedOff signals the readiness gate was closed; the buffer was never
	// inspected.
	GatedOff float64 = -1
	// NotDecoded is the command id output when no frame completed.
	NotDecoded float64 = 0
)

const gateThreshold = 0.5

// Result is the output pair of one decode step, plus scan diagnostics.
type Result struct {
	CommandID  float64
	Completion float64
	// ParseErrors counts grammar faults observed during the scan. Diagnostic
	// only; it is not one of the block's output ports.
	ParseErrors int
}

// Decoded reports whether the step completed a frame.
func (r Result) Decoded() bool {
	return r.Completion == 1
}

// Block is the no-memory decode orchestrator. Every Step creates a fresh
// parser and drops it on return, so no partial frame ever survives into the
// next step.
type Block struct {
	newParser func() Parser
}

func New(newParser func() Parser) *Block {
	return &Block{newParser: newParser}
}

// Step decodes at most one frame from buf. ready below 0.5 short-circuits to
// (-1, -1) without touching the buffer. A grammar fault mid-scan resets the
// parser and the scan continues from the next byte; the first completed frame
// halts the scan, ignoring the rest of the buffer.
func (b *Block) Step(buf []byte, ready float64) Result {
	if ready < gateThreshold {
		return Result{CommandID: GatedOff, Completion: GatedOff}
	}

	id := NotDecoded
	p := b.newParser()
	start := p.ErrorCount()
	errorBaseline := start

	done := false
	for _, c := range buf {
		done = p.ProcessByte(c)

		if n := p.ErrorCount(); n > errorBaseline {
			errorBaseline = n
			p.Reset()
		}

		if done {
			id = float64(p.CommandID())
			break
		}
	}

	// A zero-byte scan never produces an indicator; completion defaults to 0.
	completion := 0.0
	if done {
		completion = 1
	}
	return Result{CommandID: id, Completion: completion, ParseErrors: errorBaseline - start}
}
