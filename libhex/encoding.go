package libhex

import (
	"bytes"
	"encoding/binary"

	"github.com/polyhex-systems/gohex/gohex"
)

// Binary encoding of a benzenoid system (most significant info first allows
// useful LSM searching/sorting):
//      HexCount (byte)
//      <1..HexCount>
//          uvarint(i), uvarint(j)
//
// The system is canonized before encoding, so all coordinates are
// non-negative and the encoding of a system uniquely identifies its
// isomorphism class.

// AppendEncodingTo canonizes b and appends its binary encoding to the given
// buffer.
func (b *Benzenoid) AppendEncodingTo(in []byte) (gohex.Encoding, error) {
	if err := b.Canonize(); err != nil {
		return nil, err
	}
	if len(b.coords) > gohex.MaxHexCount {
		return nil, gohex.ErrHexCountRange
	}

	var scrap [binary.MaxVarintLen64]byte
	enc := append(in, byte(len(b.coords)))
	for _, c := range b.coords {
		n := binary.PutUvarint(scrap[:], uint64(c.I))
		enc = append(enc, scrap[:n]...)
		n = binary.PutUvarint(scrap[:], uint64(c.J))
		enc = append(enc, scrap[:n]...)
	}
	return enc, nil
}

// NewBenzenoidFromEncoding assigns a new Benzenoid from an encoding generated
// by AppendEncodingTo().
func NewBenzenoidFromEncoding(enc gohex.Encoding) (*Benzenoid, error) {
	if len(enc) < 1 {
		return nil, gohex.ErrBadEncoding
	}
	hexCount := int(enc[0])
	if hexCount == 0 {
		return nil, gohex.ErrBadEncoding
	}

	rdr := bytes.NewReader(enc[1:])
	b := NewBenzenoid(nil)
	for k := 0; k < hexCount; k++ {
		i, err := binary.ReadUvarint(rdr)
		if err != nil {
			b.Reclaim()
			return nil, gohex.ErrBadEncoding
		}
		j, err := binary.ReadUvarint(rdr)
		if err != nil {
			b.Reclaim()
			return nil, gohex.ErrBadEncoding
		}
		b.coords = append(b.coords, Coord{I: int(i), J: int(j)})
	}
	if rdr.Len() != 0 {
		b.Reclaim()
		return nil, gohex.ErrBadEncoding
	}

	// Encodings are only ever written in canonical form
	b.canonic = true
	return b, nil
}
