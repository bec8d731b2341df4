package identity

import (
	"encoding/binary"
	"fmt"

	"relic-manager/feature/relic/models"

	"github.com/cespare/xxhash/v2"
)

// tokenPrefix versions the hash layout. Changing the field layout requires a
// new prefix, since every stored lock is keyed by the old tokens.
const tokenPrefix = "relic-token-v2"

// Token returns the content-derived identity of r as 16 lower-case hex digits.
// Equip, Locked and Token do not take part in the hash. Set and slot enter by
// name so reordering their enums keeps existing tokens valid.
func Token(r *models.Relic) string {
	h := xxhash.New()
	_, _ = h.WriteString(tokenPrefix)
	_, _ = h.Write([]byte{0})

	writeString(h, r.SetName.String())
	writeString(h, r.Slot.String())
	writeUint32(h, r.Star)
	writeUint32(h, r.Level)
	writeStat(h, r.MainStat)

	for _, sub := range r.SubStats() {
		if sub == nil {
			_, _ = h.Write([]byte{0, 0})
			continue
		}
		_, _ = h.Write([]byte{1, 0})
		writeStat(h, *sub)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func writeUint32(h *xxhash.Digest, v uint32) {
	var buf [5]byte
	binary.LittleEndian.PutUint32(buf[:4], v)
	_, _ = h.Write(buf[:])
}

func writeString(h *xxhash.Digest, v string) {
	_, _ = h.WriteString(v)
	_, _ = h.Write([]byte{0})
}

func writeStat(h *xxhash.Digest, s models.Stat) {
	var buf [9]byte
	writeString(h, s.Name.String())
	binary.LittleEndian.PutUint64(buf[:8], uint64(s.Quantized()))
	_, _ = h.Write(buf[:])
}
