package tagblock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ftl/iec61162/iec"
)

// Sentence is the embedded sentence of a Message. sentence.Sentence implements
// this interface.
type Sentence interface {
	String() string
}

// Text wraps raw sentence text so it can be embedded in a Message directly.
type Text string

func (t Text) String() string {
	return string(t)
}

// TagBlock carries the envelope metadata of one encapsulated sentence message,
// see [450] 7.5. The group parameter is present only when the message is part
// of a multi-sentence group (LineCount > 1); destination and timestamp are
// optional.
type TagBlock struct {
	Source      iec.SourceID
	Destination iec.SourceID
	Timestamp   time.Time

	LineNumber int
	LineCount  int
	GroupID    int
}

// String renders the TAG block as per [450] 7.5.1, including its own checksum
// computed over the parameter list only.
func (t TagBlock) String() string {
	params := make([]string, 0, 4)
	if t.LineCount > 1 {
		params = append(params, fmt.Sprintf("g:%d-%d-%d", t.LineNumber, t.LineCount, t.GroupID))
	}
	params = append(params, "s:"+string(t.Source))
	if t.Destination != "" {
		params = append(params, "d:"+string(t.Destination))
	}
	if !t.Timestamp.IsZero() {
		params = append(params, "c:"+strconv.FormatInt(t.Timestamp.Unix(), 10))
	}

	content := strings.Join(params, ",")
	return fmt.Sprintf("\\%s*%02X\\", content, iec.Checksum(content))
}

// Message is one encapsulated sentence message: a TAG block prefixed to one
// embedded sentence. The TAG block's checksum and the sentence's checksum are
// computed over disjoint spans and never combined.
type Message struct {
	TagBlock TagBlock
	Sentence Sentence
}

// String renders the message as per [450] 7.5: the TAG block followed by the
// embedded sentence text.
func (m Message) String() string {
	return m.TagBlock.String() + m.Sentence.String()
}

// Option configures the TAG blocks produced by Wrap.
type Option func(*TagBlock)

// WithDestination sets the destination identification parameter.
func WithDestination(destination iec.SourceID) Option {
	return func(t *TagBlock) {
		t.Destination = destination
	}
}

// WithTimestamp sets the UNIX timestamp parameter.
func WithTimestamp(timestamp time.Time) Option {
	return func(t *TagBlock) {
		t.Timestamp = timestamp
	}
}

// Wrap encapsulates the given sentences as one logical submission. A single
// sentence yields one message without group parameters; multiple sentences
// yield one message per sentence, all carrying the given group ID with
// 1-based line numbers and the total line count. This grouping is independent
// of any sentence-level fragment numbering the embedded sentences may carry.
func Wrap(sentences []Sentence, source iec.SourceID, groupID int, options ...Option) ([]Message, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("no sentences to wrap")
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if groupID < 1 || groupID > 99 {
		return nil, iec.InvalidFieldError{Field: "group ID", Value: strconv.Itoa(groupID), Reason: "must be 1-99"}
	}

	result := make([]Message, len(sentences))
	for i, sentence := range sentences {
		tagBlock := TagBlock{
			Source:     source,
			LineNumber: i + 1,
			LineCount:  len(sentences),
			GroupID:    groupID,
		}
		for _, option := range options {
			option(&tagBlock)
		}
		if tagBlock.Destination != "" {
			if err := tagBlock.Destination.Validate(); err != nil {
				return nil, iec.InvalidIdentifierError{Name: "destination ID", Value: string(tagBlock.Destination), Reason: "must be two upper-case letters followed by four digits"}
			}
		}
		result[i] = Message{TagBlock: tagBlock, Sentence: sentence}
	}
	return result, nil
}

// Generator wraps sentences into encapsulated messages and assigns the group
// IDs for multi-sentence groups, cycling through 1-99. A Generator is not
// safe for concurrent use; callers must synchronize access.
type Generator struct {
	source  iec.SourceID
	groupID int
}

// NewGenerator returns a new Generator emitting messages with the given
// source identification.
func NewGenerator(source iec.SourceID) (*Generator, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	return &Generator{source: source}, nil
}

// Generate encapsulates groups of sentences into the flat ordered sequence of
// messages ready for transmission. Contiguous sentences belonging to one
// logical submission must be grouped in one slice; every group consumes one
// group ID.
func (g *Generator) Generate(groups [][]Sentence, options ...Option) ([]Message, error) {
	result := make([]Message, 0, len(groups))
	for _, group := range groups {
		g.groupID++
		if g.groupID > 99 {
			g.groupID = 1
		}

		messages, err := Wrap(group, g.source, g.groupID, options...)
		if err != nil {
			return nil, err
		}
		result = append(result, messages...)
	}
	return result, nil
}
