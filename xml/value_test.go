package xml

import (
	"bytes"
	"math"
	"testing"
	"time"
)

func TestValue(t *testing.T) {
	cases := map[string]struct {
		setter   func(Value)
		expected string
	}{
		"string": {
			setter:   func(v Value) { v.String("mydomain") },
			expected: `<v>mydomain</v>`,
		},
		"string escaped": {
			setter:   func(v Value) { v.String(`select * from "d" where a < 'b' & c`) },
			expected: `<v>select * from &#34;d&#34; where a &lt; &#39;b&#39; &amp; c</v>`,
		},
		"integer": {
			setter:   func(v Value) { v.Integer(-12) },
			expected: `<v>-12</v>`,
		},
		"long": {
			setter:   func(v Value) { v.Long(1024) },
			expected: `<v>1024</v>`,
		},
		"double": {
			setter:   func(v Value) { v.Double(0.0000071759) },
			expected: `<v>0.0000071759</v>`,
		},
		"double large": {
			setter:   func(v Value) { v.Double(1e20) },
			expected: `<v>100000000000000000000</v>`,
		},
		"double exponent": {
			setter:   func(v Value) { v.Double(3e22) },
			expected: `<v>3e+22</v>`,
		},
		"double small exponent": {
			setter:   func(v Value) { v.Double(1e-9) },
			expected: `<v>1e-9</v>`,
		},
		"double infinity": {
			setter:   func(v Value) { v.Double(math.Inf(-1)) },
			expected: `<v>-Infinity</v>`,
		},
		"boolean": {
			setter:   func(v Value) { v.Boolean(true) },
			expected: `<v>true</v>`,
		},
		"timestamp": {
			setter:   func(v Value) { v.Timestamp(time.Date(2009, 4, 15, 10, 0, 0, 0, time.UTC)) },
			expected: `<v>2009-04-15T10:00:00Z</v>`,
		},
		"blob": {
			setter:   func(v Value) { v.Blob([]byte("foo bar")) },
			expected: `<v>Zm9vIGJhcg==</v>`,
		},
		"blob nil": {
			setter:   func(v Value) { v.Blob(nil) },
			expected: `<v></v>`,
		},
		"member": {
			setter: func(v Value) {
				v.MemberElement(Start("RequestId")).String("abc")
				v.Close()
			},
			expected: `<v><RequestId>abc</RequestId></v>`,
		},
		"attribute": {
			setter: func(v Value) {
				v.MemberElement(Start("Name", Attr{Name: Name{Local: "encoding"}, Value: `base"64`})).String("Y29sb3I=")
				v.Close()
			},
			expected: `<v><Name encoding="base&#34;64">Y29sb3I=</Name></v>`,
		},
		"array": {
			setter: func(v Value) {
				a := v.Array()
				a.Member().String("value1")
				a.Member().String("value2")
				a.Close()
			},
			expected: `<v><member>value1</member><member>value2</member></v>`,
		},
		"array member name": {
			setter: func(v Value) {
				a := v.ArrayWithMemberName("DomainName")
				a.Member().String("d1")
				a.Close()
			},
			expected: `<v><DomainName>d1</DomainName></v>`,
		},
		"map": {
			setter: func(v Value) {
				m := v.Map()
				e := m.Entry()
				e.MemberElement(Start("key")).String("abc")
				e.MemberElement(Start("value")).Integer(123)
				e.Close()
				m.Close()
			},
			expected: `<v><entry><key>abc</key><value>123</value></entry></v>`,
		},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			enc := NewEncoder()
			tt.setter(enc.RootElement(Start("v")))

			if e, a := []byte(tt.expected), enc.Bytes(); !bytes.Equal(e, a) {
				t.Errorf("expected %+q, but got %+q", e, a)
			}
		})
	}
}

func TestCollectionElements(t *testing.T) {
	enc := NewEncoder()
	parent := enc.RootElement(Start("GetAttributesResult"))

	a := parent.CollectionElement(Start("Attribute")).FlattenedArray()
	for _, v := range []string{"red", "blue"} {
		m := a.Member()
		m.MemberElement(Start("Name")).String("color")
		m.MemberElement(Start("Value")).String(v)
		m.Close()
	}
	a.Close()

	wrapped := parent.CollectionElement(Start("Names")).Array()
	wrapped.Member().String("n1")
	wrapped.Close()

	m := parent.CollectionElement(Start("Tag")).FlattenedMap()
	e := m.Entry()
	e.MemberElement(Start("key")).String("k")
	e.MemberElement(Start("value")).String("v")
	e.Close()
	m.Close()

	parent.CollectionElement(Start("Empty")).Close()
	parent.Close()

	expect := `<GetAttributesResult>` +
		`<Attribute><Name>color</Name><Value>red</Value></Attribute>` +
		`<Attribute><Name>color</Name><Value>blue</Value></Attribute>` +
		`<Names><member>n1</member></Names>` +
		`<Tag><key>k</key><value>v</value></Tag>` +
		`<Empty></Empty>` +
		`</GetAttributesResult>`
	if e, a := expect, enc.String(); e != a {
		t.Errorf("expected %+q, but got %+q", e, a)
	}
}
