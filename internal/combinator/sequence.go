package combinator

// Tuple4 holds the values extracted by Sequence4, in parser order.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Sequence4 applies p1..p4 in order, threading each remainder into the next
// parser. The first failure is returned unchanged; nothing is retried.
func Sequence4[A, B, C, D any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return func(in Input) (Tuple4[A, B, C, D], Input, error) {
		var out Tuple4[A, B, C, D]
		var err error
		rest := in
		if out.V1, rest, err = p1(rest); err != nil {
			return Tuple4[A, B, C, D]{}, in, err
		}
		if out.V2, rest, err = p2(rest); err != nil {
			return Tuple4[A, B, C, D]{}, in, err
		}
		if out.V3, rest, err = p3(rest); err != nil {
			return Tuple4[A, B, C, D]{}, in, err
		}
		if out.V4, rest, err = p4(rest); err != nil {
			return Tuple4[A, B, C, D]{}, in, err
		}
		return out, rest, nil
	}
}

// Preceded consumes sep, then applies p to the remainder and returns p's value.
func Preceded[S, T any](sep Parser[S], p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		_, rest, err := sep(in)
		if err != nil {
			var zero T
			return zero, in, err
		}
		return p(rest)
	}
}

// Alt tries each parser in order against the same input and returns the first
// success. If all fail, the last failure is returned.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		err := error(Fail(LiteralMismatch, in))
		for _, p := range ps {
			v, rest, perr := p(in)
			if perr == nil {
				return v, rest, nil
			}
			err = perr
		}
		return zero, in, err
	}
}

// Map transforms the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (U, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero U
			return zero, in, err
		}
		return f(v), rest, nil
	}
}

// FollowedBy runs p and then requires next to match at p's remainder without
// consuming it. If next fails, the failure is reported at p's input.
func FollowedBy[T, U any](p Parser[T], next Parser[U]) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			return v, in, err
		}
		if _, _, err := next(rest); err != nil {
			var zero T
			return zero, in, &Failure{Kind: LiteralMismatch, Remaining: in, Cause: err}
		}
		return v, rest, nil
	}
}

// End matches only at end of input.
func End() Parser[string] {
	return func(in Input) (string, Input, error) {
		if !in.Empty() {
			return "", in, Fail(LiteralMismatch, in)
		}
		return "", in, nil
	}
}

// Label reports any failure of p as kind at stage. The fragment of the
// original failure is kept and the original failure becomes the Cause.
func Label[T any](p Parser[T], stage Stage, kind Kind) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, rest, err := p(in)
		if err == nil {
			return v, rest, nil
		}
		at := in
		if f, ok := AsFailure(err); ok {
			at = f.Remaining
		}
		return v, in, &Failure{Kind: kind, Stage: stage, Remaining: at, Cause: err}
	}
}
