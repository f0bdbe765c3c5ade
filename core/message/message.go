package message

import (
	stderrors "errors"

	"sms-cost/core/phone"
	"sms-cost/internal/errors"
)

// ErrEmptyBody is returned when a message has no text
var ErrEmptyBody = stderrors.New("message body is empty")

// Endpoint is a sender or recipient given either as raw text or as an
// already parsed phone number.
type Endpoint struct {
	text   string
	number phone.Number
	parsed bool
}

// Text is an endpoint that still has to be parsed
func Text(s string) Endpoint {
	return Endpoint{text: s}
}

// Phone is an endpoint from a parsed number
func Phone(n phone.Number) Endpoint {
	return Endpoint{number: n, parsed: true}
}

func (e Endpoint) resolve() (phone.Number, error) {
	if e.parsed {
		if e.number.IsZero() {
			return phone.Number{}, errors.Input("phone number rejected", phone.ErrInvalidPhoneNumber)
		}
		return e.number, nil
	}
	return phone.Parse(e.text)
}

// Message is an immutable SMS between two numbers.
// Segmentation depends only on the body and is computed at construction.
type Message struct {
	sender    phone.Number
	recipient phone.Number
	body      string
	seg       Segmentation
}

// New builds a message, parsing text endpoints. It fails when either endpoint
// is not a valid number or the body is empty.
func New(sender, recipient Endpoint, body string) (Message, error) {
	return NewWithCounter(defaultCounter, sender, recipient, body)
}

// NewWithCounter is New with an explicit segment counter
func NewWithCounter(c *Counter, sender, recipient Endpoint, body string) (Message, error) {
	from, err := sender.resolve()
	if err != nil {
		return Message{}, annotate(err, "sender")
	}
	to, err := recipient.resolve()
	if err != nil {
		return Message{}, annotate(err, "recipient")
	}
	if body == "" {
		return Message{}, errors.Input("message rejected", ErrEmptyBody)
	}

	return Message{
		sender:    from,
		recipient: to,
		body:      body,
		seg:       c.Count(body),
	}, nil
}

func annotate(err error, endpoint string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.WithContext("endpoint", endpoint)
	}
	return err
}

// Sender returns the sending number
func (m Message) Sender() phone.Number { return m.sender }

// Recipient returns the receiving number
func (m Message) Recipient() phone.Number { return m.recipient }

// Body returns the text
func (m Message) Body() string { return m.body }

// Encoding returns the body encoding
func (m Message) Encoding() Encoding { return m.seg.Encoding }

// Segments returns the number of billable segments
func (m Message) Segments() int { return m.seg.Segments }

// Segmentation returns the full count
func (m Message) Segmentation() Segmentation { return m.seg }
