package sentence

import (
	"github.com/ftl/iec61162/iec"
)

// Generator builds sentences and assigns the sequential message IDs that link
// the fragments of multi-sentence messages. Each formatter has its own ID
// sequence, cycling through 0-9 and advancing only after a multi-sentence
// message. A Generator is not safe for concurrent use; callers must
// synchronize access and must not reuse an ID for messages that are still in
// flight.
type Generator struct {
	talker iec.TalkerID

	vdmSequentialID int
	bbmSequentialID int
}

// NewGenerator returns a new Generator emitting sentences with the given talker ID.
func NewGenerator(talker iec.TalkerID) (*Generator, error) {
	if err := talker.Validate(); err != nil {
		return nil, err
	}
	return &Generator{talker: talker}, nil
}

// GenerateVDM builds the VDM sentences of one AIS VHF data-link message with
// an automatically assigned sequential message ID.
func (g *Generator) GenerateVDM(channel string, payload string, fillBits int) ([]Sentence, error) {
	result, err := BuildVDM(g.talker, g.vdmSequentialID, channel, payload, fillBits)
	if err != nil {
		return nil, err
	}
	if len(result) > 1 {
		g.vdmSequentialID = (g.vdmSequentialID + 1) % 10
	}
	return result, nil
}

// GenerateBBM builds the BBM sentences of one AIS binary broadcast message
// with an automatically assigned sequential message ID.
func (g *Generator) GenerateBBM(channel int, msgID int, payload string, fillBits int) ([]Sentence, error) {
	result, err := BuildBBM(g.talker, g.bbmSequentialID, channel, msgID, payload, fillBits)
	if err != nil {
		return nil, err
	}
	if len(result) > 1 {
		g.bbmSequentialID = (g.bbmSequentialID + 1) % 10
	}
	return result, nil
}
