package simon

// Verdict is the outcome of one player selection.
type Verdict int

const (
	VerdictIgnored  Verdict = iota // Input not accepted right now
	VerdictPending                 // Correct so far, more to come
	VerdictComplete                // Whole sequence reproduced
	VerdictBroken                  // Mismatch
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictIgnored:
		return "Ignored"
	case VerdictPending:
		return "Pending"
	case VerdictComplete:
		return "Complete"
	case VerdictBroken:
		return "Broken"
	default:
		return "Unknown"
	}
}

// Validator checks player selections against the sequence one at a time.
// It starts closed; Open enables input until the round completes or breaks.
type Validator struct {
	trace []Signal
	open  bool
}

// Open starts accepting selections.
func (v *Validator) Open() {
	v.open = true
}

// IsOpen reports whether selections are accepted.
func (v *Validator) IsOpen() bool {
	return v.open
}

// Reset empties the trace and closes the validator.
func (v *Validator) Reset() {
	v.trace = v.trace[:0]
	v.open = false
}

// Trace returns a copy of the selections made this round.
func (v *Validator) Trace() []Signal {
	return append([]Signal(nil), v.trace...)
}

// Len returns the number of selections made this round.
func (v *Validator) Len() int {
	return len(v.trace)
}

// Submit records sig and compares it with seq at the same index.
func (v *Validator) Submit(seq Sequence, sig Signal) Verdict {
	if !v.open || len(v.trace) >= seq.Len() {
		return VerdictIgnored
	}

	idx := len(v.trace)
	v.trace = append(v.trace, sig)

	if seq.At(idx) != sig {
		v.open = false
		return VerdictBroken
	}
	if len(v.trace) == seq.Len() {
		v.open = false
		return VerdictComplete
	}
	return VerdictPending
}
