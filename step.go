package radix

// AddStep records one carry resolution of an addition.
//
// The final step of a trace (Final set) writes the leftover carry into the
// most significant position; its operand digits are zero.
type AddStep struct {
	Index    int      `json:"index"`
	CarryIn  int      `json:"carry_in"`
	CarryOut int      `json:"carry_out"`
	U        int      `json:"u_digit"`
	V        int      `json:"v_digit"`
	Sum      int      `json:"sum"`
	Digit    int      `json:"digit_result"`
	Result   Snapshot `json:"result"`
	Final    bool     `json:"final,omitempty"`
	Summary  string   `json:"summary"`
}

// SubStep records one borrow resolution of a subtraction. Borrows are 0 or
// -1.
//
// The final step (Final set) reports the terminal borrow, which is always 0
// since the engine subtracts the smaller operand from the larger one.
type SubStep struct {
	Index     int      `json:"index"`
	BorrowIn  int      `json:"borrow_in"`
	BorrowOut int      `json:"borrow_out"`
	U         int      `json:"u_digit"`
	V         int      `json:"v_digit"`
	Diff      int      `json:"diff"`
	Digit     int      `json:"digit_result"`
	Result    Snapshot `json:"result"`
	Final     bool     `json:"final,omitempty"`
	Summary   string   `json:"summary"`
}

// MulStepKind distinguishes digit-multiply steps from row completions.
type MulStepKind string

// Kinds of multiplication steps.
const (
	Calculation MulStepKind = "calculation"
	FinalCarry  MulStepKind = "final_carry"
)

// MulStep records one multiply-accumulate u[J]*v[I] + w[I+J] + carry, or,
// for a FinalCarry step, the carry left at the end of row I being added into
// w[I+J] with J = len(u).
type MulStep struct {
	Kind     MulStepKind `json:"type"`
	I        int         `json:"i"`
	J        int         `json:"j"`
	U        int         `json:"u_digit"`
	V        int         `json:"v_digit"`
	CarryIn  int         `json:"carry_in"`
	Partial  int         `json:"partial"`
	Product  int         `json:"product"`
	Sum      int         `json:"sum"`
	Digit    int         `json:"digit_result"`
	CarryOut int         `json:"carry_out"`
	Result   Snapshot    `json:"result"`
	Summary  string      `json:"summary"`
}

// Column returns the index of the result digit written by s.
func (s *MulStep) Column() int { return s.I + s.J }

// An Adjustment is a rejected quotient digit trial: QHat*v_norm exceeded the
// dividend window.
type Adjustment struct {
	QHat    int    `json:"q_hat"`
	Product Buffer `json:"product"`
	Window  Buffer `json:"compared_to"`
	Cmp     int    `json:"cmp"`
}

// DivStep records the computation of quotient digit J.
type DivStep struct {
	J           int          `json:"j"`
	Window      Buffer       `json:"u_tilde"`
	Estimate    int          `json:"q_estimate"`
	Adjustments []Adjustment `json:"adjustments"`
	QHat        int          `json:"q_hat"`
	Product     Buffer       `json:"product"`
	Remainder   Buffer       `json:"remainder"`
	State       Snapshot     `json:"u_norm"`
	Summary     string       `json:"summary"`
}

// Corrections returns the number of times the estimate was decremented.
func (s *DivStep) Corrections() int { return len(s.Adjustments) }
