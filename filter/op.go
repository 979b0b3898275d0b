package filter

import "fmt"

// Op is a comparison operator. Paired with a comparator it forms the match
// condition comparison filters exclude cells with.
type Op uint8

const (
	LT Op = 1 + iota
	LE
	EQ
	NEQ
	GE
	GT
	// NOOP never matches, turning any comparison filter into a pass through.
	NOOP
)

// Holds reports whether the ordering r satisfies op, with r the comparator's
// ordering of the cell bytes against its reference. Pure and total; NOOP
// holds for nothing.
func (op Op) Holds(r int) bool {
	switch op {
	case LT:
		return r < 0
	case LE:
		return r <= 0
	case EQ:
		return r == 0
	case NEQ:
		return r != 0
	case GE:
		return r >= 0
	case GT:
		return r > 0
	}
	return false
}

// Valid reports whether op is one of the defined operators.
func (op Op) Valid() bool { return op >= LT && op <= NOOP }

func (op Op) String() string {
	switch op {
	case LT:
		return "lt"
	case LE:
		return "le"
	case EQ:
		return "eq"
	case NEQ:
		return "neq"
	case GE:
		return "ge"
	case GT:
		return "gt"
	case NOOP:
		return "noop"
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// ParseOp reads an operator from its symbol or name.
func ParseOp(s string) (Op, error) {
	switch s {
	case "<", "lt":
		return LT, nil
	case "<=", "le":
		return LE, nil
	case "=", "==", "eq":
		return EQ, nil
	case "!=", "neq":
		return NEQ, nil
	case ">=", "ge":
		return GE, nil
	case ">", "gt":
		return GT, nil
	case "noop":
		return NOOP, nil
	}
	return 0, fmt.Errorf("%w: unknown comparison operator %q", ErrInvalidArgument, s)
}
