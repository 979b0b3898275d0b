package filter

import (
	"fmt"
	"strconv"
)

// FromArguments builds a filter from its registered name and a raw argument
// list, the boundary text parsers call after tokenizing. Argument arity and
// shape are validated per kind; every failure wraps ErrInvalidArgument.
func FromArguments(name string, args [][]byte) (Filter, error) {
	k, ok := kindsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidArgument, name)
	}
	return variants[k].fromArgs(args)
}

func intArg(arg []byte) (int, error) {
	n, err := strconv.Atoi(string(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, arg)
	}
	return n, nil
}

func boolArg(arg []byte) (bool, error) {
	v, err := strconv.ParseBool(string(arg))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a bool", ErrInvalidArgument, arg)
	}
	return v, nil
}

func arity(name string, args [][]byte, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidArgument, name, want, len(args))
	}
	return nil
}
