package autodiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/tapegrad/internal/autodiff/ops"
	"golang.org/x/exp/constraints"
)

// String dumps the tape, one line per node:
//
//	idx: 2, data: 10, grad: 1 <-- mul -- (0, 1)
//
// Leaf nodes have no operator suffix. The format is meant for debugging and
// is not parsed back.
func (t *Tape[T]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}

// Dump writes the same text as String to w.
func (t *Tape[T]) Dump(w io.Writer) error {
	for i, node := range t.Nodes() {
		if _, err := io.WriteString(w, FormatNode(i, node)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatNode formats a single dump line, without the trailing newline.
func FormatNode[T constraints.Float](idx int, node Node[T]) string {
	line := fmt.Sprintf("idx: %d, data: %v, grad: %v", idx, node.Data, node.Grad)
	if node.Op.Kind == ops.Leaf {
		return line
	}
	return line + " <-- " + node.Op.String()
}
