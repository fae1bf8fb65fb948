package plural

// node is a compiled expression. eval reports false when the value is undefined,
// which only happens on division or modulo by zero.
type node interface {
	eval(n int64) (int64, bool)
}

type numNode int64

func (v numNode) eval(int64) (int64, bool) { return int64(v), true }

type varNode struct{}

func (varNode) eval(n int64) (int64, bool) { return n, true }

type unaryNode struct {
	op string
	x  node
}

func (u *unaryNode) eval(n int64) (int64, bool) {
	v, ok := u.x.eval(n)
	if !ok {
		return 0, false
	}
	if u.op == "!" {
		return boolInt(v == 0), true
	}
	return -v, true
}

type binaryNode struct {
	op          string
	left, right node
}

func (b *binaryNode) eval(n int64) (int64, bool) {
	l, ok := b.left.eval(n)
	if !ok {
		return 0, false
	}

	// && and || short-circuit like C.
	switch b.op {
	case "&&":
		if l == 0 {
			return 0, true
		}
		r, ok := b.right.eval(n)
		return boolInt(r != 0), ok
	case "||":
		if l != 0 {
			return 1, true
		}
		r, ok := b.right.eval(n)
		return boolInt(r != 0), ok
	}

	r, ok := b.right.eval(n)
	if !ok {
		return 0, false
	}

	switch b.op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		if r == 0 {
			return 0, false
		}
		return l / r, true
	case "%":
		if r == 0 {
			return 0, false
		}
		return l % r, true
	case "==":
		return boolInt(l == r), true
	case "!=":
		return boolInt(l != r), true
	case "<":
		return boolInt(l < r), true
	case "<=":
		return boolInt(l <= r), true
	case ">":
		return boolInt(l > r), true
	case ">=":
		return boolInt(l >= r), true
	}

	return 0, false
}

type ternaryNode struct {
	cond, yes, no node
}

func (t *ternaryNode) eval(n int64) (int64, bool) {
	c, ok := t.cond.eval(n)
	if !ok {
		return 0, false
	}
	if c != 0 {
		return t.yes.eval(n)
	}
	return t.no.eval(n)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
