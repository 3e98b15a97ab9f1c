package xmldoc

import "strings"

// Renderer is implemented by values that render themselves as a markup fragment.
type Renderer interface {
	XML() *Element
}

// Attribute is a single named attribute on an Element.
type Attribute struct {
	Name  string
	Value string
}

// Element represents one markup node: a tag with optional text content,
// ordered attributes and ordered child elements.
type Element struct {
	tag        string
	text       string
	attributes []Attribute
	children   []*Element
}

// NewElement creates an element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// WithText sets the text content of the element.
func (e *Element) WithText(text string) *Element {
	e.text = text
	return e
}

// WithAttr appends a named attribute. Attributes render in insertion order.
func (e *Element) WithAttr(name, value string) *Element {
	e.attributes = append(e.attributes, Attribute{Name: name, Value: value})
	return e
}

// WithTextElement appends a child element carrying only text content.
func (e *Element) WithTextElement(tag, text string) *Element {
	return e.WithElement(NewElement(tag).WithText(text))
}

// WithElement appends a child element. Children render in insertion order,
// after the text content.
func (e *Element) WithElement(child *Element) *Element {
	e.children = append(e.children, child)
	return e
}

// String renders the element and its descendants as markup text. The output
// carries no declaration, no indentation and no escaping; closing tags are
// always written, even for empty elements.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Element) write(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, attr := range e.attributes {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(e.text)
	for _, child := range e.children {
		child.write(b)
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}
