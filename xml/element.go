package xml

// Name is an element or attribute name with its namespace.
type Name struct {
	Space, Local string
}

// Attr is an attribute of a start element.
type Attr struct {
	Name  Name
	Value string
}

// StartElement is the start tag of an element.
type StartElement struct {
	Name Name
	Attr []Attr
}

// End returns the end tag closing the element.
func (e StartElement) End() EndElement {
	return EndElement{Name: e.Name}
}

// EndElement is the end tag of an element.
type EndElement struct {
	Name Name
}

// Start returns a StartElement for the local name.
func Start(local string, attrs ...Attr) StartElement {
	return StartElement{Name: Name{Local: local}, Attr: attrs}
}
