package quantity

// Cmp compares magnitudes of two quantities with equal dimensions, returning
// -1, 0 or +1.
func (q Quantity[T]) Cmp(o Quantity[T]) (int, error) {
	if !q.Compatible(o) {
		return 0, incompatible("compare", q.dim.String(), o.dim.String())
	}
	return q.magnitude.Cmp(o.magnitude), nil
}

// Equal reports whether q == o.
func (q Quantity[T]) Equal(o Quantity[T]) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c == 0, err
}

// Less reports whether q < o.
func (q Quantity[T]) Less(o Quantity[T]) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c < 0, err
}

// LessEqual reports whether q <= o.
func (q Quantity[T]) LessEqual(o Quantity[T]) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c <= 0, err
}

// Greater reports whether q > o.
func (q Quantity[T]) Greater(o Quantity[T]) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c > 0, err
}

// GreaterEqual reports whether q >= o.
func (q Quantity[T]) GreaterEqual(o Quantity[T]) (bool, error) {
	c, err := q.Cmp(o)
	return err == nil && c >= 0, err
}
