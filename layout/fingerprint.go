package layout

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Fingerprint returns a 64-bit hash of everything that determines the wire
// format of the schema: message names and type identifiers, and each field's
// name, kind, element type, count and offset. The schema name is not
// included. Two peers with equal fingerprints agree on the layout.
func (s *Schema) Fingerprint() uint64 {
	h := murmur3.New64()
	buf := make([]byte, 0, 64)
	for _, m := range s.Messages {
		buf = buf[:0]
		buf = appendString(buf, m.Name)
		buf = append(buf, m.TypeID)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(m.Fields)))
		_, _ = h.Write(buf)
		for _, f := range m.Fields {
			buf = buf[:0]
			buf = appendString(buf, f.Name)
			buf = append(buf, byte(f.Kind), byte(f.Element))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(f.Count))
			buf = binary.LittleEndian.AppendUint64(buf, uint64(f.Offset))
			_, _ = h.Write(buf)
		}
	}
	return h.Sum64()
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
