// Package vm implements the Metronome32 execution engine: a single-
// threaded, deterministic, reversible interpreter over the instruction set
// decoded by package isa.
package vm

import "github.com/ocornoc/metronome32/isa"

// VM is one running instance. Its Context is exclusively owned by the
// instance; external code only ever sees copies of it through GetContext.
type VM struct {
	ctx    Context
	events chan Event
}

// New builds a VM with the given image loaded into memory starting at
// loadAt, and the program counter set to startAt.
func New(image []uint32, startAt, loadAt uint32) *VM {
	mem := make(Memory, len(image))
	for i, w := range image {
		mem.Write(loadAt+uint32(i), w)
	}
	return &VM{ctx: Context{PC: startAt, Mem: mem}}
}

// SetEvents registers ch to receive step notifications. Passing nil stops
// notification. Sends never block: a full or absent channel just drops the
// event.
func (v *VM) SetEvents(ch chan Event) { v.events = ch }

// GetContext returns an independent copy of the VM's state. Mutating the
// result never affects the VM.
func (v *VM) GetContext() Context { return v.ctx.Clone() }

// SetContext replaces the VM's entire state atomically with an independent
// copy of c.
func (v *VM) SetContext(c Context) { v.ctx = c.Clone() }

// Reversing reports the current step direction.
func (v *VM) Reversing() bool { return v.ctx.Reversing }

// Reverse toggles the step direction with no arguments, or sets it to set[0]
// if one is given, returning the resulting direction.
func (v *VM) Reverse(set ...bool) bool {
	if len(set) > 0 {
		v.ctx.Reversing = set[0]
	} else {
		v.ctx.Reversing = !v.ctx.Reversing
	}
	return v.ctx.Reversing
}

// Halted reports whether the machine is halted.
func (v *VM) Halted() bool { return v.ctx.Halted }

// Halt sets the halted flag to set[0] (default true). It refuses to clear
// a halt while the current error is non-trivial, returning false in that
// case; recovery requires SetContext.
func (v *VM) Halt(set ...bool) bool {
	want := true
	if len(set) > 0 {
		want = set[0]
	}
	if v.ctx.Halted && !want && !v.ctx.Error.IsTrivial() {
		return false
	}
	v.ctx.Halted = want
	return true
}

func (v *VM) GetErrorCode() ErrorKind { return v.ctx.Error }
func (v *VM) GetErrorName() string    { return v.ctx.Error.String() }
func (v *VM) IsErrorTrivial() bool    { return v.ctx.Error.IsTrivial() }

// Step runs n (default 1) sub-steps, stopping at the first that fails.
// It returns true iff every sub-step succeeded with a trivial error
// throughout.
func (v *VM) Step(n ...int) bool {
	times := 1
	if len(n) > 0 {
		times = n[0]
	}
	stillGood := true
	for i := 0; i < times && stillGood; i++ {
		stillGood = v.staticStep()
	}
	return stillGood
}

// staticStep runs exactly one sub-step, mirroring the reference
// implementation's dispatch: fetch, then halted/trivial-error short
// circuit, then dispatch by direction and decoded mnemonic.
func (v *VM) staticStep() bool {
	var fetchPC uint32
	if v.ctx.Reversing {
		fetchPC = v.ctx.PC - 1
	} else {
		fetchPC = v.ctx.PC
	}
	word := v.ctx.Mem.Read(fetchPC)

	if v.ctx.Halted || !v.ctx.Error.IsTrivial() {
		return false
	}

	d, ok := isa.Classify(isa.Word(word))
	success := false

	if v.ctx.Reversing {
		if ok {
			if fn, has := backwardOps[d.Mnemonic]; has {
				success = fn(d, &v.ctx, v)
			}
		} else if word == MemoryDefault {
			v.ctx.Error = ErrNAIDefault
		} else {
			v.ctx.Halted = true
			v.ctx.Error = ErrNAI
		}
	} else {
		if ok {
			if fn, has := forwardOps[d.Mnemonic]; has {
				success = fn(d, &v.ctx, v)
			}
		} else if word == MemoryDefault {
			v.ctx.Error = ErrNAIDefault
		} else {
			v.ctx.Halted = true
			v.ctx.PC++
			v.ctx.Error = ErrNAI
		}
	}

	v.reportStep(fetchPC, success)
	return success
}

func (v *VM) reportStep(pc uint32, success bool) {
	switch {
	case v.ctx.Halted && !v.ctx.Error.IsTrivial():
		v.emit(Event{Kind: EventError, PC: pc, Message: v.ctx.Error.String()})
	case v.ctx.Halted:
		v.emit(Event{Kind: EventHalt, PC: pc, Message: v.ctx.Error.String()})
	case success:
		v.emit(Event{Kind: EventStep, PC: pc})
	}
}
