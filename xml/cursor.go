package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DefaultEnvelopeDepth is the number of wrapper elements, the operation
// response element and the operation result element, enclosing the fields
// of an operation's outermost result shape.
const DefaultEnvelopeDepth = 2

// EventKind identifies the kind of a parse event.
type EventKind int

// Enumeration of parse event kinds.
const (
	StartElementEvent EventKind = iota + 1
	EndElementEvent
	AttributeEvent
	TextEvent
	EndDocumentEvent
)

func (k EventKind) String() string {
	switch k {
	case StartElementEvent:
		return "StartElement"
	case EndElementEvent:
		return "EndElement"
	case AttributeEvent:
		return "Attribute"
	case TextEvent:
		return "Text"
	case EndDocumentEvent:
		return "EndDocument"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single structural event pulled from a Cursor.
type Event struct {
	Kind EventKind

	// Name of the element or attribute, zero for Text and EndDocument.
	Name Name

	// Attribute value or character data.
	Value string
}

// CursorOptions configures a Cursor.
type CursorOptions struct {
	// EnvelopeDepth is added to the target depth of a shape unmarshaled at
	// the start of the document. Defaults to DefaultEnvelopeDepth.
	EnvelopeDepth int
}

// Cursor is a forward only traversal context over a stream of XML parse
// events. It tracks the nesting depth and element path of the current
// position. A Cursor is owned by a single unmarshal call and is not safe for
// concurrent use.
type Cursor struct {
	decoder *xml.Decoder
	options CursorOptions

	// local names of the open elements, len(stack) is the depth
	stack []string

	started bool
	current Event

	// attribute events of the last start element not yet delivered
	pending []Event

	// token read ahead by Text
	peeked xml.Token

	metadataExprs []metadataExpression
	metadata      map[string]string
}

type metadataExpression struct {
	expr  string
	depth int
	key   string
}

// NewCursor returns a Cursor reading XML from r, positioned before the
// first event of the document.
func NewCursor(r io.Reader, optFns ...func(*CursorOptions)) *Cursor {
	options := CursorOptions{EnvelopeDepth: DefaultEnvelopeDepth}
	for _, fn := range optFns {
		fn(&options)
	}
	if options.EnvelopeDepth < 0 {
		options.EnvelopeDepth = 0
	}

	return &Cursor{
		decoder:  xml.NewDecoder(r),
		options:  options,
		metadata: map[string]string{},
	}
}

// Depth returns the current element nesting depth. It is zero before the
// root element is entered and after it is closed.
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// EnvelopeDepth returns the envelope depth the cursor was configured with.
func (c *Cursor) EnvelopeDepth() int {
	return c.options.EnvelopeDepth
}

// AtDocumentStart reports whether no event has been pulled from the cursor
// yet.
func (c *Cursor) AtDocumentStart() bool {
	return !c.started
}

// Current returns the last event returned by Next.
func (c *Cursor) Current() Event {
	return c.current
}

// Path returns the slash separated path of the current position, e.g.
// "/SelectResponse/SelectResult/Item". When positioned on an attribute the
// final step is the attribute name prefixed with '@'.
func (c *Cursor) Path() string {
	var sb strings.Builder
	for _, name := range c.stack {
		sb.WriteByte('/')
		sb.WriteString(name)
	}
	if c.current.Kind == AttributeEvent {
		sb.WriteString("/@")
		sb.WriteString(c.current.Name.Local)
	}
	return sb.String()
}

// Match reports whether the current position matches the path expression at
// the given depth. The expression "." always matches. Every element step in
// the expression after the first adds one to the expected depth, attribute
// steps ("@name") do not. The position matches when the current depth equals
// the expected depth and the current path ends with the expression.
func (c *Cursor) Match(expr string, depth int) bool {
	if expr == "." {
		return true
	}

	for i := 0; i < len(expr)-1; i++ {
		if expr[i] == '/' && expr[i+1] != '@' {
			depth++
		}
	}

	return depth == c.Depth() && strings.HasSuffix(c.Path(), "/"+expr)
}

// RegisterMetadata registers a path expression whose element text is
// captured into Metadata under key whenever a start element matching expr at
// depth is pulled from the cursor.
func (c *Cursor) RegisterMetadata(expr string, depth int, key string) {
	c.metadataExprs = append(c.metadataExprs, metadataExpression{
		expr: expr, depth: depth, key: key,
	})
}

// Metadata returns the values captured for registered metadata expressions.
func (c *Cursor) Metadata() map[string]string {
	return c.metadata
}

// Next pulls the next event from the stream. After the root element has been
// closed and the input is exhausted an EndDocumentEvent is returned. A
// document truncated inside an element returns an error.
func (c *Cursor) Next() (Event, error) {
	c.started = true

	if len(c.pending) != 0 {
		c.current, c.pending = c.pending[0], c.pending[1:]
		return c.current, nil
	}

	for {
		tok, err := c.token()
		if err == io.EOF {
			if len(c.stack) != 0 {
				return Event{}, fmt.Errorf("unexpected end of document in %s, %w", c.Path(), io.ErrUnexpectedEOF)
			}
			c.current = Event{Kind: EndDocumentEvent}
			return c.current, nil
		}
		if err != nil {
			return Event{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			c.stack = append(c.stack, t.Name.Local)
			for _, attr := range t.Attr {
				if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
					continue
				}
				c.pending = append(c.pending, Event{
					Kind:  AttributeEvent,
					Name:  Name{Space: attr.Name.Space, Local: attr.Name.Local},
					Value: attr.Value,
				})
			}
			c.current = Event{
				Kind: StartElementEvent,
				Name: Name{Space: t.Name.Space, Local: t.Name.Local},
			}
			if err := c.captureMetadata(); err != nil {
				return Event{}, err
			}
			return c.current, nil

		case xml.EndElement:
			if len(c.stack) != 0 {
				c.stack = c.stack[:len(c.stack)-1]
			}
			c.current = Event{
				Kind: EndElementEvent,
				Name: Name{Space: t.Name.Space, Local: t.Name.Local},
			}
			return c.current, nil

		case xml.CharData:
			c.current = Event{Kind: TextEvent, Value: string(t)}
			return c.current, nil

		default:
			// comments, processing instructions and directives carry no
			// structure
			continue
		}
	}
}

// Text returns the text content of the current element, or the value of the
// current attribute. The element's end element is left unconsumed so that
// the next call to Next returns it.
func (c *Cursor) Text() (string, error) {
	if c.current.Kind == AttributeEvent {
		return c.current.Value, nil
	}

	var sb strings.Builder
	for {
		tok, err := c.peek()
		if err == io.EOF {
			return "", fmt.Errorf("unexpected end of document reading %s, %w", c.Path(), io.ErrUnexpectedEOF)
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
			c.peeked = nil
		case xml.Comment, xml.ProcInst:
			c.peeked = nil
		case xml.EndElement:
			return sb.String(), nil
		default:
			return "", fmt.Errorf("expected text content in %s, got %T", c.Path(), tok)
		}
	}
}

func (c *Cursor) captureMetadata() error {
	for _, me := range c.metadataExprs {
		if !c.Match(me.expr, me.depth) {
			continue
		}
		v, err := c.Text()
		if err != nil {
			return err
		}
		c.metadata[me.key] = v
	}
	return nil
}

func (c *Cursor) token() (xml.Token, error) {
	if c.peeked != nil {
		tok := c.peeked
		c.peeked = nil
		return tok, nil
	}
	return c.readToken()
}

func (c *Cursor) peek() (xml.Token, error) {
	if c.peeked == nil {
		tok, err := c.readToken()
		if err != nil {
			return nil, err
		}
		c.peeked = tok
	}
	return c.peeked, nil
}

func (c *Cursor) readToken() (xml.Token, error) {
	tok, err := c.decoder.Token()
	if err != nil {
		return nil, err
	}
	// the decoder reuses CharData storage between calls
	return xml.CopyToken(tok), nil
}
