package line

import "bytes"

// FromBytes splits data into lines on '\n', stripping a trailing '\r'
// from each line (CRLF input), and returns a new Document whose active
// list holds them in order. A final line with no trailing newline is
// included.
func FromBytes(data []byte) *Document {
	d := New()

	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		end := i
		if end > start && data[end-1] == '\r' {
			end--
		}
		d.AppendLine(NewLine(data[start:end]))
		start = i + 1
	}

	if start < len(data) {
		end := len(data)
		if end > start && data[end-1] == '\r' {
			end--
		}
		d.AppendLine(NewLine(data[start:end]))
	}

	return d
}

// ToBytes serialises the active list: each line's bytes followed by a
// '\n'. A '\n' is written after every line, including the last,
// regardless of whether the original input had a final newline — a
// documented divergence from strict round-trip, not a bug.
func (d *Document) ToBytes() []byte {
	var buf bytes.Buffer
	for l := d.head; l != nil; l = l.next {
		buf.Write(l.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
