package log

import (
	"io"
)

type PlainResultWriter struct{}

func (*PlainResultWriter) Write(w io.Writer, result Result) error {
	_, err := io.WriteString(w, result.String()+"\n")
	return err
}
