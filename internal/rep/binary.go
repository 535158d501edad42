package rep

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/boolalg/expr/internal/enode"
)

// Binary tag bytes, one per Node kind plus a sentinel for the invalid
// (zero-value) Handle the public package represents with a nil *Node.
const (
	tagInvalid byte = 255
	tagConst0  byte = 0
	tagConst1  byte = 1
	tagPosLit  byte = 2
	tagNegLit  byte = 3
	tagAnd     byte = 4
	tagOr      byte = 5
	tagXor     byte = 6
)

// Dump writes node's binary form to w: a tag byte, then a varid for a
// literal or an operand count followed by each operand's own Dump for an
// operator. node == nil dumps the invalid-expression sentinel.
func Dump(w io.Writer, node *enode.Node) error {
	if node == nil {
		return writeByte(w, tagInvalid)
	}
	switch node.Kind() {
	case enode.Const0:
		return writeByte(w, tagConst0)
	case enode.Const1:
		return writeByte(w, tagConst1)
	case enode.PosLit:
		if err := writeByte(w, tagPosLit); err != nil {
			return err
		}
		return writeInt(w, node.VarID())
	case enode.NegLit:
		if err := writeByte(w, tagNegLit); err != nil {
			return err
		}
		return writeInt(w, node.VarID())
	}

	var tag byte
	switch node.Kind() {
	case enode.And:
		tag = tagAnd
	case enode.Or:
		tag = tagOr
	case enode.Xor:
		tag = tagXor
	}
	if err := writeByte(w, tag); err != nil {
		return err
	}
	if err := writeInt(w, node.OperandCount()); err != nil {
		return err
	}
	for i := 0; i < node.OperandCount(); i++ {
		if err := Dump(w, node.Operand(i)); err != nil {
			return err
		}
	}
	return nil
}

// Restore reads a Node back from r in the form Dump produces. A nil
// *enode.Node with a nil error means r encoded the invalid-expression
// sentinel.
func Restore(r io.Reader, m *enode.Manager) (*enode.Node, error) {
	tag, err := readByte(r)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagInvalid:
		return nil, nil
	case tagConst0:
		return m.Zero(), nil
	case tagConst1:
		return m.One(), nil
	case tagPosLit:
		v, err := readInt(r)
		if err != nil {
			return nil, err
		}
		return m.PosLit(v), nil
	case tagNegLit:
		v, err := readInt(r)
		if err != nil {
			return nil, err
		}
		return m.NegLit(v), nil
	case tagAnd, tagOr, tagXor:
		n, err := readInt(r)
		if err != nil {
			return nil, err
		}
		base := m.Top()
		for i := 0; i < n; i++ {
			opr, err := Restore(r, m)
			if err != nil {
				return nil, err
			}
			if opr == nil {
				return nil, ParseError{Message: "invalid expression cannot appear as an operand"}
			}
			m.Push(opr)
		}
		switch tag {
		case tagAnd:
			return m.And(base), nil
		case tagOr:
			return m.Or(base), nil
		default:
			return m.Xor(base), nil
		}
	default:
		return nil, ParseError{Message: fmt.Sprintf("unrecognized binary tag byte %d", tag)}
	}
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func writeInt(w io.Writer, v int) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func readInt(r io.Reader) (int, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint64(buf[:])), nil
}
