// Package rep implements the textual and binary serialization forms of
// an enode.Node tree: a canonical prefix-tagged "rep-string", a
// best-effort human-readable infix form, and a tagged-byte binary dump.
package rep

import (
	"strconv"
	"strings"

	"github.com/boolalg/expr/internal/enode"
)

// RepString renders node in canonical prefix (Polish) form: each node
// contributes a one-letter type tag (C for a constant, P/N for a
// literal's polarity, A/O/X for And/Or/Xor) followed by its
// distinguishing integer (the constant's 0/1, the literal's variable id,
// the operator's operand count) and then, depth-first, every operand's
// own rep-string with no separators — the operand counts are exactly
// what make the concatenation unambiguous to parse back.
func RepString(node *enode.Node) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	writeRepString(&b, node)
	return b.String()
}

func writeRepString(b *strings.Builder, node *enode.Node) {
	switch node.Kind() {
	case enode.Const0:
		b.WriteString("C0")
	case enode.Const1:
		b.WriteString("C1")
	case enode.PosLit:
		b.WriteByte('P')
		b.WriteString(strconv.Itoa(node.VarID()))
	case enode.NegLit:
		b.WriteByte('N')
		b.WriteString(strconv.Itoa(node.VarID()))
	case enode.And:
		b.WriteByte('A')
		b.WriteString(strconv.Itoa(node.OperandCount()))
	case enode.Or:
		b.WriteByte('O')
		b.WriteString(strconv.Itoa(node.OperandCount()))
	case enode.Xor:
		b.WriteByte('X')
		b.WriteString(strconv.Itoa(node.OperandCount()))
	}
	for i := 0; i < node.OperandCount(); i++ {
		writeRepString(b, node.Operand(i))
	}
}

// repStringParser walks a rep-string left to right, one byte at a time;
// it never backtracks, matching the stateless single-pass reader the
// format is designed for.
type repStringParser struct {
	s   string
	pos int
}

func (p *repStringParser) atEnd() bool { return p.pos >= len(p.s) }

func (p *repStringParser) readByte() (byte, error) {
	if p.atEnd() {
		return 0, ParseError{Pos: p.pos, Message: "unexpected end of rep-string"}
	}
	c := p.s[p.pos]
	p.pos++
	return c, nil
}

func (p *repStringParser) readInt() int {
	ans := 0
	for !p.atEnd() && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		ans = ans*10 + int(p.s[p.pos]-'0')
		p.pos++
	}
	return ans
}

// ParseRepString parses a canonical rep-string back into a Node, using m
// to rebuild And/Or/Xor nodes through the canonicalizing reducers (a
// well-formed rep-string round-trips to an identical shape, but running
// operands back through the reducers is what makes the parser tolerant
// of a hand-edited or foreign-tool-produced string that isn't already in
// normal form).
func ParseRepString(m *enode.Manager, s string) (*enode.Node, error) {
	if s == "" {
		return nil, nil
	}
	p := &repStringParser{s: s}
	node, err := parseRepStringNode(p, m)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, ParseError{Pos: p.pos, Message: "trailing characters after complete expression"}
	}
	return node, nil
}

func parseRepStringNode(p *repStringParser, m *enode.Manager) (*enode.Node, error) {
	c, err := p.readByte()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'C':
		c, err := p.readByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case '0':
			return m.Zero(), nil
		case '1':
			return m.One(), nil
		default:
			return nil, ParseError{Pos: p.pos - 1, Message: "expected '0' or '1' after 'C'"}
		}
	case 'P':
		return m.PosLit(p.readInt()), nil
	case 'N':
		return m.NegLit(p.readInt()), nil
	case 'A', 'O', 'X':
		n := p.readInt()
		if n < 2 {
			return nil, ParseError{Pos: p.pos, Message: "operator needs at least 2 operands"}
		}
		base := m.Top()
		for i := 0; i < n; i++ {
			opr, err := parseRepStringNode(p, m)
			if err != nil {
				return nil, err
			}
			m.Push(opr)
		}
		switch c {
		case 'A':
			return m.And(base), nil
		case 'O':
			return m.Or(base), nil
		default:
			return m.Xor(base), nil
		}
	default:
		return nil, ParseError{Pos: p.pos - 1, Message: "unrecognized tag byte '" + string(c) + "'"}
	}
}
