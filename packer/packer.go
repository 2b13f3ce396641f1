// Package packer implements the reference packer visitor: a binary
// serialization of every visited node into fixed-size records appended to
// a growing buffer. It deliberately reproduces a bug present in the
// reference implementation it's grounded on (see Packer.record) rather
// than fixing it — the bug is a property of this example visitor, not of
// the parser core it consumes.
package packer

import (
	"bytes"
	"encoding/binary"

	"github.com/k0kubun/rbparse/parser"
)

const recordSize = 12

// Packer appends one 12-byte record per visited node to Buf: 4 bytes of
// node kind, 4 bytes of start offset, 4 bytes of end offset, all
// little-endian. record's write order is the bug: the kind write is
// clobbered by the start/end writes before the record is ever flushed, so
// on the wire bytes [0:4) hold the start offset, bytes [4:8) the end
// offset, and bytes [8:12) are zero.
type Packer struct {
	Buf bytes.Buffer
}

func New() *Packer {
	return &Packer{}
}

// record appends one record for a node spanning [start, end) with the
// given node-kind tag. The kind is written first into the record's first
// 4 bytes, then immediately overwritten by start (bytes [0:4)) and end
// (bytes [4:8)) below — losing the kind permanently before the record
// ever leaves this function. Preserved as found; not a core requirement.
func (p *Packer) record(kind uint32, start, end int) {
	var rec [recordSize]byte
	binary.LittleEndian.PutUint32(rec[0:4], kind)

	binary.LittleEndian.PutUint32(rec[0:4], uint32(start))
	binary.LittleEndian.PutUint32(rec[4:8], uint32(end))

	p.Buf.Write(rec[:])
}

// Node kind tags, distinct from parser.Kind: the packer's wire format
// enumerates syntactic forms, not token kinds.
const (
	nodeLiteral uint32 = iota
	nodeUnary
	nodeBinary
	nodeAssign
	nodeRange
	nodeGroup
	nodeArray
	nodeIndexCall
	nodeIndexExpr
	nodeTernary
	nodeDefined
	nodeNot
	nodeBegin
	nodeWhile
	nodeUntil
)

func (p *Packer) Literal(tok parser.Token) { p.record(nodeLiteral, tok.Start, tok.End) }

func (p *Packer) Unary(op parser.Token) { p.record(nodeUnary, op.Start, op.End) }

func (p *Packer) Binary(op parser.Token) { p.record(nodeBinary, op.Start, op.End) }

func (p *Packer) Assign(op parser.Token) { p.record(nodeAssign, op.Start, op.End) }

func (p *Packer) Range(op parser.Token, hasLeft bool) { p.record(nodeRange, op.Start, op.End) }

func (p *Packer) Group(open, close parser.Token) { p.record(nodeGroup, open.Start, close.End) }

func (p *Packer) Array(open, close parser.Token, size int) {
	p.record(nodeArray, open.Start, close.End)
}

func (p *Packer) IndexCall(open, close parser.Token) {
	p.record(nodeIndexCall, open.Start, close.End)
}

func (p *Packer) IndexExpr(open, close parser.Token) {
	p.record(nodeIndexExpr, open.Start, close.End)
}

func (p *Packer) Ternary(question, colon parser.Token) {
	p.record(nodeTernary, question.Start, colon.End)
}

func (p *Packer) Defined(kw parser.Token) { p.record(nodeDefined, kw.Start, kw.End) }

func (p *Packer) Not(kw parser.Token) { p.record(nodeNot, kw.Start, kw.End) }

func (p *Packer) Begin(open, close parser.Token, hasEnsure bool) {
	p.record(nodeBegin, open.Start, close.End)
}

func (p *Packer) WhileBlock(kw, end parser.Token) { p.record(nodeWhile, kw.Start, end.End) }

func (p *Packer) UntilBlock(kw, end parser.Token) { p.record(nodeUntil, kw.Start, end.End) }
