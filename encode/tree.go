package encode

import (
	"encoding/json"
	"io"

	"github.com/versodoc/markup/ast"
)

// EncodeTree writes the node forest as a JSON array. Each node carries a
// "type" field naming its kind plus its variant fields; children recurse.
func EncodeTree(w io.Writer, nodes []ast.Node) error {
	if nodes == nil {
		nodes = []ast.Node{}
	}
	d, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
