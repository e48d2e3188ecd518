package ast

import "hash/fnv"

// Hash returns a structural hash of n: equal nodes (per Equal) always
// hash equal. The optimizer passes themselves compare nodes with Equal
// and do not call Hash.
func (n *Node) Hash() uint64 {
	h := fnv.New64a()
	n.writeHash(h)
	return h.Sum64()
}

func (n *Node) writeHash(h interface{ Write([]byte) (int, error) }) {
	writeString := func(s string) {
		h.Write([]byte{0})
		h.Write([]byte(s))
	}
	writeByte := func(b byte) { h.Write([]byte{b}) }

	writeByte(byte(n.kind))
	switch n.kind {
	case KindConstant:
		if n.boolVal {
			writeByte(1)
		} else {
			writeByte(0)
		}
	case KindComparison, KindCaseInsensitiveComparison:
		writeString(n.field)
		writeByte(byte(n.op))
		writeString(n.value)
	case KindBetween:
		writeString(n.field)
		writeString(n.lower)
		writeString(n.upper)
		writeByte(boolByte(n.lowerInclusive))
		writeByte(boolByte(n.upperInclusive))
	case KindInList:
		writeString(n.field)
		for _, v := range n.values {
			writeString(v)
		}
	case KindDateBetween:
		writeString(n.field)
		writeString(n.lower)
		writeString(n.upper)
		writeString(n.formatter)
	case KindNot:
		n.child.writeHash(h)
	case KindComposite:
		writeByte(byte(n.compositeOp))
		for _, c := range n.children {
			c.writeHash(h)
		}
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
