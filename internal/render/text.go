package render

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// SanitizeMessage folds whitespace runs so an error fits on one line.
func SanitizeMessage(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if s == "" {
		return "error"
	}
	return s
}

func indentJSON(w io.Writer, src string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(src), "", "  "); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
