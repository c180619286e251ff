package arrow

import (
	"strings"

	tp "github.com/xlab/treeprint"
)

// diagram records how an arrow has been constructed. Diagrams are immutable
// and shared between arrows.
type diagram struct {
	label    string
	operands []*diagram
}

func leaf(label string) *diagram {
	return &diagram{label: label}
}

func compound(op string, operands ...*diagram) *diagram {
	return &diagram{label: op, operands: operands}
}

func (d *diagram) String() string {
	if d == nil {
		return "<nil>"
	}
	switch len(d.operands) {
	case 0:
		return d.label
	case 1:
		return d.label + " " + d.operands[0].String()
	}
	b := strings.Builder{}
	b.WriteByte('(')
	for i, o := range d.operands {
		if i > 0 {
			b.WriteString(" " + d.label + " ")
		}
		b.WriteString(o.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (d *diagram) tree() string {
	if d == nil {
		return "<nil>\n"
	}
	printer := tp.NewWithRoot(d.label)
	for _, o := range d.operands {
		o.print(printer)
	}
	return printer.String()
}

func (d *diagram) print(printer tp.Tree) {
	if len(d.operands) == 0 {
		printer.AddNode(d.label)
		return
	}
	branch := printer.AddBranch(d.label)
	for _, o := range d.operands {
		o.print(branch)
	}
}
