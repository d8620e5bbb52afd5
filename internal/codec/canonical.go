package codec

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces the canonical JSON form of rec used for
// hashing: keys in sorted order, no insignificant whitespace, NFC strings
// and no HTML escaping.
func MarshalCanonical(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"dimension":[`)
	for i, e := range rec.Dimension {
		if i > 0 {
			buf.WriteByte(',')
		}
		if e == "" {
			e = "0"
		}
		if err := writeCanonicalString(&buf, e); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`],"domain":`)
	if err := writeCanonicalString(&buf, rec.Domain); err != nil {
		return nil, err
	}
	buf.WriteString(`,"magnitude":`)
	if err := writeCanonicalString(&buf, rec.Magnitude); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeCanonicalString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// json.Encoder appends a newline.
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
