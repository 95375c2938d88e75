package script

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/comalice/vectorx"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding Encode writes.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Validate reports an error for unsupported formats.
func (f Format) Validate() error {
	switch f {
	case FormatYAML, FormatJSON, FormatCBOR:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want yaml, json or cbor)", f)
	}
}

// Encode writes v to w in format f. CBOR is written as hex text followed by
// a newline.
func Encode(w io.Writer, f Format, v *vectorx.Vector[int]) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatJSON:
		data, err = json.Marshal(v)
		data = append(data, '\n')
	case FormatCBOR:
		var raw []byte
		raw, err = cbor.Marshal(v)
		data = []byte(hex.EncodeToString(raw) + "\n")
	default:
		return f.Validate()
	}
	if err != nil {
		return fmt.Errorf("%s marshal: %w", f, err)
	}
	_, err = w.Write(data)
	return err
}
