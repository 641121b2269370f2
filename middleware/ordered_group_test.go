package middleware

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type mockIder string

func (m mockIder) ID() string { return string(m) }

func TestOrderedIDs(t *testing.T) {
	cases := map[string]struct {
		Build       func(*orderedIDs) error
		ExpectList  []string
		ExpectOrder []string
		ExpectErr   bool
	}{
		"add": {
			Build: func(o *orderedIDs) error {
				for _, id := range []string{"Serializer", "Signing", "Deserializer"} {
					if err := o.Add(mockIder(id), After); err != nil {
						return err
					}
				}
				return o.Add(mockIder("Validation"), Before)
			},
			ExpectList: []string{"Validation", "Serializer", "Signing", "Deserializer"},
		},
		"add duplicate": {
			Build: func(o *orderedIDs) error {
				o.Add(mockIder("Signing"), After)
				return o.Add(mockIder("Signing"), After)
			},
			ExpectErr: true,
		},
		"add empty": {
			Build:     func(o *orderedIDs) error { return o.Add(mockIder(""), After) },
			ExpectErr: true,
		},
		"add unknown position": {
			Build:     func(o *orderedIDs) error { return o.Add(mockIder("Signing"), 123) },
			ExpectErr: true,
		},
		"insert": {
			Build: func(o *orderedIDs) error {
				o.Add(mockIder("Serializer"), After)
				o.Add(mockIder("Signing"), After)
				if err := o.Insert(mockIder("ContentLength"), "Signing", Before); err != nil {
					return err
				}
				return o.Insert(mockIder("UserAgent"), "ContentLength", After)
			},
			ExpectList: []string{"Serializer", "ContentLength", "UserAgent", "Signing"},
		},
		"insert relative to missing": {
			Build:     func(o *orderedIDs) error { return o.Insert(mockIder("Signing"), "Serializer", After) },
			ExpectErr: true,
		},
		"insert relative to empty": {
			Build:     func(o *orderedIDs) error { return o.Insert(mockIder("Signing"), "", After) },
			ExpectErr: true,
		},
		"swap": {
			Build: func(o *orderedIDs) error {
				o.Add(mockIder("Serializer"), After)
				o.Add(mockIder("Signing"), After)
				o.Add(mockIder("Deserializer"), After)
				removed, err := o.Swap("Signing", mockIder("SigV2"))
				if err != nil {
					return err
				}
				if removed.ID() != "Signing" {
					t.Errorf("expect Signing removed, got %v", removed.ID())
				}
				return nil
			},
			ExpectList: []string{"Serializer", "SigV2", "Deserializer"},
		},
		"swap to existing": {
			Build: func(o *orderedIDs) error {
				o.Add(mockIder("Serializer"), After)
				o.Add(mockIder("Signing"), After)
				_, err := o.Swap("Signing", mockIder("Serializer"))
				return err
			},
			ExpectErr: true,
		},
		"remove": {
			Build: func(o *orderedIDs) error {
				o.Add(mockIder("Serializer"), After)
				o.Add(mockIder("Signing"), After)
				if err := o.Remove("Serializer"); err != nil {
					return err
				}
				return o.Insert(mockIder("Deserializer"), "Signing", After)
			},
			ExpectList: []string{"Signing", "Deserializer"},
		},
		"remove missing": {
			Build:     func(o *orderedIDs) error { return o.Remove("Signing") },
			ExpectErr: true,
		},
		"clear": {
			Build: func(o *orderedIDs) error {
				o.Add(mockIder("Serializer"), After)
				o.Clear()
				return o.Add(mockIder("Signing"), After)
			},
			ExpectList: []string{"Signing"},
		},
		"slots": {
			Build: func(o *orderedIDs) error {
				o.AddSlot("Serializer", After)
				o.AddSlot("Signing", After)
				o.InsertSlot("Deserializer", "Signing", After)
				if err := o.Insert(mockIder("ContentLength"), "Signing", Before); err != nil {
					return err
				}
				return o.Add(mockIder("Signing"), Before)
			},
			ExpectList:  []string{"Serializer", "ContentLength", "Signing", "Deserializer"},
			ExpectOrder: []string{"ContentLength", "Signing"},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			o := newOrderedIDs()
			err := c.Build(o)
			if c.ExpectErr {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			if diff := cmp.Diff(c.ExpectList, o.List()); len(diff) != 0 {
				t.Errorf("expect list match\n%s", diff)
			}

			expectOrder := c.ExpectOrder
			if expectOrder == nil {
				expectOrder = c.ExpectList
			}
			var order []string
			for _, v := range o.GetOrder() {
				order = append(order, v.(ider).ID())
			}
			if diff := cmp.Diff(expectOrder, order); len(diff) != 0 {
				t.Errorf("expect order match\n%s", diff)
			}
		})
	}
}

func TestOrderedIDsGet(t *testing.T) {
	o := newOrderedIDs()
	if err := o.Add(mockIder("Signing"), After); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if v, ok := o.Get("Serializer"); ok || v != nil {
		t.Errorf("expect Serializer not found, got %v", v)
	}
	v, ok := o.Get("Signing")
	if !ok {
		t.Fatalf("expect Signing found")
	}
	if e, a := "Signing", v.ID(); e != a {
		t.Errorf("expect %v id, got %v", e, a)
	}
}

func noError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
}
