package sentence

import (
	"github.com/ftl/iec61162/iec"
)

// Armour converts a bitstream into the six-bit ASCII armouring of [61162-1]
// table 7. bits holds the bitstream MSB-first, bitLen is its length in bits.
// The bitstream is padded with zero bits to a multiple of six; the returned
// count of these fill bits goes into the sentence's fill bit field. A bitLen
// beyond the length of bits is clamped.
func Armour(bits []byte, bitLen int) (string, int) {
	if bitLen > len(bits)*8 {
		bitLen = len(bits) * 8
	}
	if bitLen < 0 {
		bitLen = 0
	}

	fillBits := (6 - bitLen%6) % 6
	n := (bitLen + fillBits) / 6

	result := make([]byte, n)
	for i := 0; i < n; i++ {
		var value byte
		for j := 0; j < 6; j++ {
			value <<= 1
			pos := i*6 + j
			if pos < bitLen && bits[pos/8]&(0x80>>(pos%8)) != 0 {
				value |= 1
			}
		}
		if value < 40 {
			result[i] = value + 48
		} else {
			result[i] = value + 56
		}
	}
	return string(result), fillBits
}

// BuildVDMFromBits armours the given [M.1371] message bitstream and builds the
// VDM sentences encapsulating it.
func BuildVDMFromBits(talker iec.TalkerID, sequentialID int, channel string, bits []byte, bitLen int) ([]Sentence, error) {
	payload, fillBits := Armour(bits, bitLen)
	return BuildVDM(talker, sequentialID, channel, payload, fillBits)
}

// BuildBBMFromBits armours the given binary payload bitstream and builds the
// BBM sentences encapsulating it.
func BuildBBMFromBits(talker iec.TalkerID, sequentialID int, channel int, msgID int, bits []byte, bitLen int) ([]Sentence, error) {
	payload, fillBits := Armour(bits, bitLen)
	return BuildBBM(talker, sequentialID, channel, msgID, payload, fillBits)
}
