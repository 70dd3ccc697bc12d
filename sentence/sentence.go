package sentence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ftl/iec61162/iec"
)

// FormatterCode identifies a sentence's semantic schema, see [61162-1] 6.
type FormatterCode string

// All supported formatter codes.
const (
	VDM FormatterCode = "VDM"
	BBM FormatterCode = "BBM"
	TXT FormatterCode = "TXT"
)

// Validate checks that this formatter code is part of the supported set.
func (f FormatterCode) Validate() error {
	if _, ok := schemas[f]; !ok {
		return iec.UnsupportedFormatterError{Formatter: string(f)}
	}
	return nil
}

// MaxSentenceLength is the maximum length of one sentence in characters,
// including all delimiters and the line ending, see [61162-1] 5.3.
const MaxSentenceLength = 82

// schema describes the fixed properties of one formatter.
type schema struct {
	startDelimiter byte
	// maxPayloadChars is the payload capacity of a single sentence, derived
	// from MaxSentenceLength with all sentence fields populated.
	maxPayloadChars int
	maxFragments    int
}

// schemas maps all supported formatter codes to their fixed properties.
var schemas = map[FormatterCode]schema{
	VDM: {startDelimiter: '!', maxPayloadChars: 60, maxFragments: 9},
	BBM: {startDelimiter: '!', maxPayloadChars: 57, maxFragments: 9},
	TXT: {startDelimiter: '$', maxPayloadChars: 61, maxFragments: 99},
}

// Sentence is one immutable presentation interface sentence. Use the Build
// functions to construct sentences from validated inputs.
type Sentence struct {
	Talker    iec.TalkerID
	Formatter FormatterCode

	fields []string
}

// Fields returns the ordered data fields of this sentence.
func (s Sentence) Fields() []string {
	result := make([]string, len(s.fields))
	copy(result, s.fields)
	return result
}

// String returns the sentence formatted as per [61162-1] 5.3, including the
// start delimiter, the checksum, and the CR LF line ending.
func (s Sentence) String() string {
	var b strings.Builder
	b.WriteByte(schemas[s.Formatter].startDelimiter)
	b.WriteString(string(s.Talker))
	b.WriteString(string(s.Formatter))
	for _, field := range s.fields {
		b.WriteByte(',')
		b.WriteString(field)
	}
	body := b.String()
	return fmt.Sprintf("%s*%02X\r\n", body, iec.Checksum(body))
}

// BuildVDM builds the sentences of one AIS VHF data-link message, see
// [61162-1] 8.3 (VDM). The payload must already be armoured in the six-bit ASCII
// of [61162-1] table 7 (see Armour). A payload that does not fit into a single
// sentence is split into fragments that all carry the given sequential message
// ID; a single-sentence message carries a null sequential message ID field.
// Intermediate fragments always carry zero fill bits, only the last fragment
// carries the given fill bit count.
func BuildVDM(talker iec.TalkerID, sequentialID int, channel string, payload string, fillBits int) ([]Sentence, error) {
	if err := talker.Validate(); err != nil {
		return nil, err
	}
	if sequentialID < 0 || sequentialID > 9 {
		return nil, iec.InvalidFieldError{Field: "sequential message ID", Value: strconv.Itoa(sequentialID), Reason: "must be 0-9"}
	}
	if channel != "A" && channel != "B" {
		return nil, iec.InvalidFieldError{Field: "AIS channel", Value: channel, Reason: "must be A or B"}
	}
	if err := validateFillBits(fillBits); err != nil {
		return nil, err
	}
	if err := validateArmouredPayload(payload); err != nil {
		return nil, err
	}

	fragments, err := splitPayload(VDM, payload)
	if err != nil {
		return nil, err
	}

	result := make([]Sentence, len(fragments))
	for i, fragment := range fragments {
		sequentialIDField := strconv.Itoa(sequentialID)
		if len(fragments) == 1 {
			sequentialIDField = ""
		}
		result[i] = Sentence{
			Talker:    talker,
			Formatter: VDM,
			fields: []string{
				strconv.Itoa(len(fragments)),
				strconv.Itoa(i + 1),
				sequentialIDField,
				channel,
				fragment,
				strconv.Itoa(fragmentFillBits(i, len(fragments), fillBits)),
			},
		}
	}
	return result, nil
}

// BuildBBM builds the sentences of one AIS binary broadcast message, see
// [61162-1] 8.3 (BBM). The channel selects the AIS broadcast channel (0: no
// preference, 1: channel A, 2: channel B, 3: both channels), msgID is the
// message ID as per [M.1371]. The payload must already be armoured in the
// six-bit ASCII of [61162-1] table 7 (see Armour).
func BuildBBM(talker iec.TalkerID, sequentialID int, channel int, msgID int, payload string, fillBits int) ([]Sentence, error) {
	if err := talker.Validate(); err != nil {
		return nil, err
	}
	if sequentialID < 0 || sequentialID > 9 {
		return nil, iec.InvalidFieldError{Field: "sequential message ID", Value: strconv.Itoa(sequentialID), Reason: "must be 0-9"}
	}
	if channel < 0 || channel > 3 {
		return nil, iec.InvalidFieldError{Field: "AIS channel", Value: strconv.Itoa(channel), Reason: "must be 0-3"}
	}
	if msgID < 0 || msgID > 63 {
		return nil, iec.InvalidFieldError{Field: "message ID", Value: strconv.Itoa(msgID), Reason: "must be 0-63"}
	}
	if err := validateFillBits(fillBits); err != nil {
		return nil, err
	}
	if err := validateArmouredPayload(payload); err != nil {
		return nil, err
	}

	fragments, err := splitPayload(BBM, payload)
	if err != nil {
		return nil, err
	}

	result := make([]Sentence, len(fragments))
	for i, fragment := range fragments {
		result[i] = Sentence{
			Talker:    talker,
			Formatter: BBM,
			fields: []string{
				strconv.Itoa(len(fragments)),
				strconv.Itoa(i + 1),
				strconv.Itoa(sequentialID),
				strconv.Itoa(channel),
				strconv.Itoa(msgID),
				fragment,
				strconv.Itoa(fragmentFillBits(i, len(fragments), fillBits)),
			},
		}
	}
	return result, nil
}

// BuildTXT builds the sentences of one text transmission, see [61162-1] 8.3 (TXT).
// The text may contain arbitrary UTF-8; it is transcoded and escaped with
// PrepareText before it is split into sentences.
func BuildTXT(talker iec.TalkerID, textID int, text string) ([]Sentence, error) {
	if err := talker.Validate(); err != nil {
		return nil, err
	}
	if textID < 0 || textID > 99 {
		return nil, iec.InvalidFieldError{Field: "text ID", Value: strconv.Itoa(textID), Reason: "must be 0-99"}
	}

	prepared := PrepareText(text)
	fragments, err := splitEscapedText(prepared, schemas[TXT].maxPayloadChars, schemas[TXT].maxFragments)
	if err != nil {
		return nil, err
	}

	result := make([]Sentence, len(fragments))
	for i, fragment := range fragments {
		result[i] = Sentence{
			Talker:    talker,
			Formatter: TXT,
			fields: []string{
				fmt.Sprintf("%02d", len(fragments)),
				fmt.Sprintf("%02d", i+1),
				fmt.Sprintf("%02d", textID),
				fragment,
			},
		}
	}
	return result, nil
}

func validateFillBits(fillBits int) error {
	if fillBits < 0 || fillBits > 5 {
		return iec.InvalidFieldError{Field: "fill bit count", Value: strconv.Itoa(fillBits), Reason: "must be 0-5"}
	}
	return nil
}

// validateArmouredPayload checks that the payload consists only of the valid
// six-bit ASCII characters of [61162-1] table 7.
func validateArmouredPayload(payload string) error {
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if (c < '0' || c > 'W') && (c < '`' || c > 'w') {
			return iec.InvalidFieldError{Field: "payload", Value: payload, Reason: fmt.Sprintf("character %q at %d is not valid six-bit ASCII", c, i)}
		}
	}
	return nil
}

// fragmentFillBits returns the fill bit count to put into fragment i of count.
// All fragments but the last are six-bit aligned and carry zero fill bits.
func fragmentFillBits(i int, count int, fillBits int) int {
	if i < count-1 {
		return 0
	}
	return fillBits
}

// splitPayload splits the payload at the capacity boundary of the given
// formatter into ordered fragments.
func splitPayload(formatter FormatterCode, payload string) ([]string, error) {
	s := schemas[formatter]
	if len(payload) <= s.maxPayloadChars {
		return []string{payload}, nil
	}

	count := (len(payload) + s.maxPayloadChars - 1) / s.maxPayloadChars
	if count > s.maxFragments {
		return nil, iec.PayloadTooLargeError{Formatter: string(formatter), Chars: len(payload), MaxChars: s.maxFragments * s.maxPayloadChars}
	}

	result := make([]string, 0, count)
	for start := 0; start < len(payload); start += s.maxPayloadChars {
		end := start + s.maxPayloadChars
		if end > len(payload) {
			end = len(payload)
		}
		result = append(result, payload[start:end])
	}
	return result, nil
}
