// Package xml_testing is an xml testing package that supports order
// independent comparison of xml documents.
package xml_testing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

type xmlAttrSlice []xml.Attr

func (x xmlAttrSlice) Len() int {
	return len(x)
}

func (x xmlAttrSlice) Less(i, j int) bool {
	spaceI, spaceJ := x[i].Name.Space, x[j].Name.Space
	localI, localJ := x[i].Name.Local, x[j].Name.Local
	valueI, valueJ := x[i].Value, x[j].Value

	spaceCmp := strings.Compare(spaceI, spaceJ)
	localCmp := strings.Compare(localI, localJ)
	valueCmp := strings.Compare(valueI, valueJ)

	if spaceCmp == -1 || (spaceCmp == 0 && (localCmp == -1 || (localCmp == 0 && valueCmp == -1))) {
		return true
	}

	return false
}

func (x xmlAttrSlice) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

// node is an element of an xml document with its children sorted.
type node struct {
	name     xml.Name
	attr     []xml.Attr
	text     string
	children []*node
}

func (n *node) write(b *strings.Builder) {
	b.WriteString("<" + n.name.Local)
	for _, a := range n.attr {
		fmt.Fprintf(b, " %s=%q", a.Name.Local, a.Value)
	}
	b.WriteString(">")
	b.WriteString(n.text)
	for _, c := range n.children {
		c.write(b)
	}
	b.WriteString("</" + n.name.Local + ">")
}

func (n *node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

// parseNode reads the element started by start, sorting its attributes and
// children. Whitespace only text between elements is ignored.
func parseNode(d *xml.Decoder, start xml.StartElement) (*node, error) {
	n := &node{name: start.Name}
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		n.attr = append(n.attr, a)
	}
	sort.Sort(xmlAttrSlice(n.attr))

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			c, err := parseNode(d, t)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, c)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(n.children) == 0 {
				n.text = text.String()
			} else {
				n.text = strings.TrimSpace(text.String())
			}
			sort.SliceStable(n.children, func(i, j int) bool {
				return n.children[i].String() < n.children[j].String()
			})
			return n, nil
		}
	}
}

// SortXML sorts the reader's XML elements
func SortXML(r io.Reader) (string, error) {
	d := xml.NewDecoder(r)
	var roots []string
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if start, ok := tok.(xml.StartElement); ok {
			n, err := parseNode(d, start)
			if err != nil {
				return "", err
			}
			roots = append(roots, n.String())
		}
	}
	sort.Strings(roots)

	var buf bytes.Buffer
	for _, r := range roots {
		buf.WriteString(r)
	}
	return buf.String(), nil
}

// AssertXML asserts two xml body's by sorting the XML and comparing the strings
// It returns a boolean value for assertion and an error which may be returned in
// case of malformed xml found while sorting.
// In case of mismatched XML, the error string will contain the diff between the two XMLs.
func AssertXML(actual io.Reader, expected io.Reader) (bool, error) {
	actualString, err := SortXML(actual)
	if err != nil {
		return false, err
	}

	expectedString, err := SortXML(expected)
	if err != nil {
		return false, err
	}

	if diff := cmp.Diff(expectedString, actualString); len(diff) != 0 {
		return false, fmt.Errorf("found diff while comparing the xml: %s", diff)
	}

	return true, nil
}
