package log

import (
	"io"
)

type JSONResultWriter struct{}

func (*JSONResultWriter) Write(w io.Writer, result Result) error {
	data, err := result.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
