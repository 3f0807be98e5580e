// internal/app/persistence.go
package app

import (
	"encoding/binary"
)

// saveSheet stores the sheet state with the list offset as its payload.
func (m *Model) saveSheet() {
	if m.StateMgr == nil {
		return
	}
	super := encodeSuper(m.Panel.List().Offset())
	m.StateMgr.SaveSheet(SheetName, m.Sheet.Save(super))
}

func encodeSuper(offset int) []byte {
	return binary.AppendUvarint(nil, uint64(max(offset, 0)))
}

func decodeSuper(b []byte) int {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0
	}
	return int(v)
}
