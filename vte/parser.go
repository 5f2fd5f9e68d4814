// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vte/parser.go
// Summary: Streaming ECMA-48/DEC escape-sequence parser (VT500-series
//          state machine) with UTF-8 decoding layered on top.
// Usage: Feed PTY output through Parse; events fire on the Performer.
// Notes: Never allocates after construction. Every byte makes progress.

package vte

import "unicode/utf8"

// State identifies one of the VT500-series parser states.
type State int

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateOSCString
	StateSOSPMAPCString
)

// Performer receives the semantic events decoded from the byte stream.
// *Screen implements it; tests and intercepting hosts may supply their own.
type Performer interface {
	// Print draws a decoded codepoint at the cursor.
	Print(r rune)
	// Execute handles a C0 control byte.
	Execute(b byte)
	// CsiDispatch handles a complete control sequence.
	CsiDispatch(params *Params, intermediates []byte, ignore bool, final byte)
	// EscDispatch handles a complete escape sequence.
	EscDispatch(intermediates []byte, ignore bool, final byte)
	// OscDispatch handles an operating system command. params are the
	// semicolon-separated raw chunks; bellTerminated tells BEL from ST.
	OscDispatch(params [][]byte, bellTerminated bool)
	// Hook begins a device control string.
	Hook(params *Params, intermediates []byte, ignore bool, final byte)
	// Put forwards one DCS passthrough byte.
	Put(b byte)
	// Unhook ends a device control string.
	Unhook()
}

// NopPerformer ignores every event. Embed it to intercept a subset.
type NopPerformer struct{}

func (NopPerformer) Print(rune)                              {}
func (NopPerformer) Execute(byte)                            {}
func (NopPerformer) CsiDispatch(*Params, []byte, bool, byte) {}
func (NopPerformer) EscDispatch([]byte, bool, byte)          {}
func (NopPerformer) OscDispatch([][]byte, bool)              {}
func (NopPerformer) Hook(*Params, []byte, bool, byte)        {}
func (NopPerformer) Put(byte)                                {}
func (NopPerformer) Unhook()                                 {}

const (
	maxIntermediates = 2
	maxOSCRaw        = 1024
	maxOSCParams     = 16
)

// Parser is the byte-level state machine. All buffers are fixed-size;
// overflow raises the ignoring flag but dispatch still fires so recovery to
// ground is guaranteed.
type Parser struct {
	state     State
	performer Performer

	params       Params
	currentParam uint16
	hasParam     bool
	// subParam is set after ':' so the next finalized value extends the
	// current primary instead of starting a new one.
	subParam bool

	intermediates   [maxIntermediates]byte
	intermediateLen int
	ignoring        bool

	oscRaw       [maxOSCRaw]byte
	oscLen       int
	oscParams    [maxOSCParams][2]int
	oscNumParams int
	oscSlices    [maxOSCParams + 1][]byte

	// Partial UTF-8 sequence carried across Parse calls.
	utfBuf  [3]byte
	utfLen  int
	utfNeed int
}

// NewParser creates a parser delivering events to p.
func NewParser(p Performer) *Parser {
	return &Parser{state: StateGround, performer: p}
}

// State returns the current parser state.
func (p *Parser) State() State { return p.state }

// Reset returns the parser to ground with all buffers cleared.
func (p *Parser) Reset() {
	p.state = StateGround
	p.clearSequence()
	p.utfLen = 0
	p.utfNeed = 0
}

// Parse advances the state machine over data. Splitting a stream into any
// consecutive slices produces the same events as feeding it whole.
func (p *Parser) Parse(data []byte) {
	for _, b := range data {
		p.Advance(b)
	}
}

// Advance processes a single byte.
func (p *Parser) Advance(b byte) {
	if p.utfNeed > 0 && p.state == StateGround {
		p.advanceUTF8(b)
		return
	}

	// Anywhere transitions preempt every state; in string states they
	// terminate the string first.
	switch b {
	case 0x18, 0x1a: // CAN, SUB
		p.abortString(false)
		p.performer.Execute(b)
		p.state = StateGround
		return
	case 0x1b:
		p.abortString(false)
		p.clearSequence()
		p.state = StateEscape
		return
	}

	switch p.state {
	case StateGround:
		p.advanceGround(b)
	case StateEscape:
		p.advanceEscape(b)
	case StateEscapeIntermediate:
		p.advanceEscapeIntermediate(b)
	case StateCSIEntry:
		p.advanceCSIEntry(b)
	case StateCSIParam:
		p.advanceCSIParam(b)
	case StateCSIIntermediate:
		p.advanceCSIIntermediate(b)
	case StateCSIIgnore:
		p.advanceCSIIgnore(b)
	case StateDCSEntry:
		p.advanceDCSEntry(b)
	case StateDCSParam:
		p.advanceDCSParam(b)
	case StateDCSIntermediate:
		p.advanceDCSIntermediate(b)
	case StateDCSPassthrough:
		p.advanceDCSPassthrough(b)
	case StateDCSIgnore:
		if b == 0x9c {
			p.state = StateGround
		}
	case StateOSCString:
		p.advanceOSCString(b)
	case StateSOSPMAPCString:
		if b == 0x9c {
			p.state = StateGround
		}
	}
}

// abortString terminates a pending OSC or DCS string when an anywhere byte
// preempts it. An ESC here is the first half of a 7-bit ST.
func (p *Parser) abortString(bell bool) {
	switch p.state {
	case StateOSCString:
		p.dispatchOSC(bell)
	case StateDCSPassthrough:
		p.performer.Unhook()
	}
}

func (p *Parser) clearSequence() {
	p.params.Clear()
	p.currentParam = 0
	p.hasParam = false
	p.subParam = false
	p.intermediateLen = 0
	p.ignoring = false
}

func (p *Parser) collect(b byte) {
	if p.intermediateLen >= maxIntermediates {
		p.ignoring = true
		return
	}
	p.intermediates[p.intermediateLen] = b
	p.intermediateLen++
}

func isExecute(b byte) bool {
	return b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f)
}

// --- GROUND ---

func (p *Parser) advanceGround(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= 0x20 && b <= 0x7e:
		p.performer.Print(rune(b))
	case b == 0x7f:
		// ignored
	default:
		p.beginUTF8(b)
	}
}

// utf8SeqLen returns the expected length of a UTF-8 sequence for a leading
// byte, or 0 when the byte cannot begin one.
func utf8SeqLen(b byte) int {
	switch {
	case b >= 0xc2 && b <= 0xdf:
		return 2
	case b >= 0xe0 && b <= 0xef:
		return 3
	case b >= 0xf0 && b <= 0xf4:
		return 4
	}
	return 0
}

func (p *Parser) beginUTF8(b byte) {
	n := utf8SeqLen(b)
	if n == 0 {
		p.performer.Print(utf8.RuneError)
		return
	}
	p.utfBuf[0] = b
	p.utfLen = 1
	p.utfNeed = n
}

func (p *Parser) advanceUTF8(b byte) {
	if b < 0x80 || b > 0xbf {
		// Not a continuation byte: the sequence is broken. Emit the
		// replacement character and reprocess b from scratch.
		p.utfLen = 0
		p.utfNeed = 0
		p.performer.Print(utf8.RuneError)
		p.Advance(b)
		return
	}
	if p.utfLen+1 < p.utfNeed {
		p.utfBuf[p.utfLen] = b
		p.utfLen++
		return
	}
	// The prefix buffer holds at most utfNeed-1 bytes; the final byte
	// completes the sequence without being stored.
	var seq [4]byte
	n := copy(seq[:], p.utfBuf[:p.utfLen])
	seq[n] = b
	r, _ := utf8.DecodeRune(seq[:n+1])
	p.utfLen = 0
	p.utfNeed = 0
	p.performer.Print(r)
}

// --- ESCAPE ---

func (p *Parser) advanceEscape(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
		p.state = StateEscapeIntermediate
	case b == '[':
		p.clearSequence()
		p.state = StateCSIEntry
	case b == ']':
		p.oscLen = 0
		p.oscNumParams = 0
		p.state = StateOSCString
	case b == 'P':
		p.clearSequence()
		p.state = StateDCSEntry
	case b == 'X', b == '^', b == '_':
		p.state = StateSOSPMAPCString
	case b >= 0x30 && b <= 0x7e:
		p.performer.EscDispatch(p.intermediates[:p.intermediateLen], p.ignoring, b)
		p.state = StateGround
	}
}

func (p *Parser) advanceEscapeIntermediate(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
	case b >= 0x30 && b <= 0x7e:
		p.performer.EscDispatch(p.intermediates[:p.intermediateLen], p.ignoring, b)
		p.state = StateGround
	}
}

// --- CSI ---

func (p *Parser) accumulate(b byte) {
	p.hasParam = true
	v := uint32(p.currentParam)*10 + uint32(b-'0')
	if v > maxParamValue {
		v = maxParamValue
	}
	p.currentParam = uint16(v)
}

// pushParam finalizes the current value: as a subparameter when it followed
// ':', otherwise as a new primary.
func (p *Parser) pushParam() {
	var ok bool
	if p.subParam {
		ok = p.params.Extend(p.currentParam)
	} else {
		ok = p.params.Push(p.currentParam)
	}
	if !ok {
		p.ignoring = true
	}
	p.currentParam = 0
	p.hasParam = false
	p.subParam = false
}

// extendParam finalizes the current value and marks the next one as its
// subparameter.
func (p *Parser) extendParam() {
	p.pushParam()
	p.subParam = true
}

func (p *Parser) dispatchCSI(final byte) {
	if p.hasParam || p.state == StateCSIParam {
		p.pushParam()
	}
	p.performer.CsiDispatch(&p.params, p.intermediates[:p.intermediateLen], p.ignoring, final)
	p.state = StateGround
}

func (p *Parser) advanceCSIEntry(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= '0' && b <= '9':
		p.accumulate(b)
		p.state = StateCSIParam
	case b == ';':
		p.pushParam()
		p.state = StateCSIParam
	case b == ':':
		p.extendParam()
		p.state = StateCSIParam
	case b >= 0x3c && b <= 0x3f: // < = > ?
		p.collect(b)
		p.state = StateCSIParam
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
		p.state = StateCSIIntermediate
	case b >= 0x40 && b <= 0x7e:
		p.dispatchCSI(b)
	}
}

func (p *Parser) advanceCSIParam(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= '0' && b <= '9':
		p.accumulate(b)
	case b == ';':
		p.pushParam()
	case b == ':':
		p.extendParam()
	case b >= 0x3c && b <= 0x3f:
		p.state = StateCSIIgnore
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
		p.state = StateCSIIntermediate
	case b >= 0x40 && b <= 0x7e:
		p.dispatchCSI(b)
	}
}

func (p *Parser) advanceCSIIntermediate(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
	case b >= 0x30 && b <= 0x3f:
		p.state = StateCSIIgnore
	case b >= 0x40 && b <= 0x7e:
		p.dispatchCSI(b)
	}
}

func (p *Parser) advanceCSIIgnore(b byte) {
	switch {
	case isExecute(b):
		p.performer.Execute(b)
	case b >= 0x40 && b <= 0x7e:
		p.state = StateGround
	}
}

// --- DCS ---

func (p *Parser) hook(final byte) {
	if p.hasParam || p.state == StateDCSParam {
		p.pushParam()
	}
	p.performer.Hook(&p.params, p.intermediates[:p.intermediateLen], p.ignoring, final)
	p.state = StateDCSPassthrough
}

func (p *Parser) advanceDCSEntry(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.accumulate(b)
		p.state = StateDCSParam
	case b == ';':
		p.pushParam()
		p.state = StateDCSParam
	case b == ':':
		p.state = StateDCSIgnore
	case b >= 0x3c && b <= 0x3f:
		p.collect(b)
		p.state = StateDCSParam
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
		p.state = StateDCSIntermediate
	case b >= 0x40 && b <= 0x7e:
		p.hook(b)
	}
}

func (p *Parser) advanceDCSParam(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.accumulate(b)
	case b == ';':
		p.pushParam()
	case b == ':', b >= 0x3c && b <= 0x3f:
		p.state = StateDCSIgnore
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
		p.state = StateDCSIntermediate
	case b >= 0x40 && b <= 0x7e:
		p.hook(b)
	}
}

func (p *Parser) advanceDCSIntermediate(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		p.collect(b)
	case b >= 0x30 && b <= 0x3f:
		p.state = StateDCSIgnore
	case b >= 0x40 && b <= 0x7e:
		p.hook(b)
	}
}

func (p *Parser) advanceDCSPassthrough(b byte) {
	switch {
	case b == 0x9c:
		p.performer.Unhook()
		p.state = StateGround
	case b == 0x7f:
		// ignored
	default:
		p.performer.Put(b)
	}
}

// --- OSC ---

func (p *Parser) advanceOSCString(b byte) {
	switch {
	case b == 0x07:
		p.dispatchOSC(true)
		p.state = StateGround
	case b == 0x9c:
		p.dispatchOSC(false)
		p.state = StateGround
	case b == ';':
		if p.oscNumParams < maxOSCParams {
			p.oscParams[p.oscNumParams] = [2]int{p.oscParamStart(), p.oscLen}
			p.oscNumParams++
		}
		p.appendOSC(b)
	case b >= 0x20:
		p.appendOSC(b)
	}
}

// oscParamStart is the raw-buffer offset where the current parameter began.
func (p *Parser) oscParamStart() int {
	if p.oscNumParams == 0 {
		return 0
	}
	return p.oscParams[p.oscNumParams-1][1] + 1
}

func (p *Parser) appendOSC(b byte) {
	if p.oscLen >= maxOSCRaw {
		return
	}
	p.oscRaw[p.oscLen] = b
	p.oscLen++
}

func (p *Parser) dispatchOSC(bell bool) {
	n := 0
	start := 0
	for i := 0; i < p.oscNumParams; i++ {
		p.oscSlices[n] = p.oscRaw[p.oscParams[i][0]:p.oscParams[i][1]]
		n++
		start = p.oscParams[i][1] + 1
	}
	if start > p.oscLen {
		start = p.oscLen
	}
	p.oscSlices[n] = p.oscRaw[start:p.oscLen]
	n++
	p.performer.OscDispatch(p.oscSlices[:n], bell)
	p.oscLen = 0
	p.oscNumParams = 0
}
