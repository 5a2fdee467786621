package encode

import (
	"bytes"

	"github.com/sx-format/sx/ir"
)

func MustString(o *ir.Object) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(o, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
