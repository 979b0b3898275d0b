package compare

// Null reports 0 when v is empty and 1 otherwise. It pairs with the equality
// operators to select or reject unset values.
type Null struct{}

func NewNull() Null { return Null{} }

func (Null) Name() string { return "null" }

func (Null) Compare(v []byte) int {
	if len(v) == 0 {
		return 0
	}
	return 1
}

func (Null) payload() []byte { return nil }

func parseNull([]byte) (Comparator, error) {
	return NewNull(), nil
}
