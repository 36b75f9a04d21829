package tabular

import (
	"strconv"
	"time"
)

// Kind identifies the decoded type of a worksheet cell.
type Kind uint8

const (
	KindMissing Kind = iota
	KindText
	KindNumber
	KindBool
	KindTime
)

// Cell is a single worksheet value decoded to its storage type. The zero
// value is a missing cell.
type Cell struct {
	kind Kind
	text string
	num  float64
	b    bool
	t    time.Time
}

// Missing is the cell returned for empty cells, error cells and lookups
// outside a row.
var Missing = Cell{}

func TextCell(s string) Cell    { return Cell{kind: KindText, text: s} }
func NumberCell(v float64) Cell { return Cell{kind: KindNumber, num: v} }
func BoolCell(v bool) Cell      { return Cell{kind: KindBool, b: v} }
func TimeCell(v time.Time) Cell { return Cell{kind: KindTime, t: v} }

func (c Cell) Kind() Kind      { return c.kind }
func (c Cell) IsMissing() bool { return c.kind == KindMissing }
func (c Cell) Text() string    { return c.text }
func (c Cell) Number() float64 { return c.num }
func (c Cell) Bool() bool      { return c.b }
func (c Cell) Time() time.Time { return c.t }

// String renders the cell as it appears in headers and match keys.
// Numbers use plain decimal notation without a forced trailing zero,
// times render as RFC 3339 and missing cells render empty.
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindTime:
		return c.t.Format(time.RFC3339)
	default:
		return ""
	}
}
