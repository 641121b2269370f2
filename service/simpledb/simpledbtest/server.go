// Package simpledbtest provides an in-memory SimpleDB served over
// httptest for testing SimpleDB clients end to end.
package simpledbtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/awslabs/aws-query-go/xml"
)

const (
	namespace = "http://sdb.amazonaws.com/doc/2009-04-15/"
	boxUsage  = "0.0000219907"

	maxNumberOfDomains = 100
)

// Options configures a Server.
type Options struct {
	// Latency is added before every response is written.
	Latency time.Duration
}

// Server is a fake SimpleDB endpoint. It is safe for concurrent use.
type Server struct {
	*httptest.Server

	options Options

	mu       sync.Mutex
	domains  map[string]*domain
	requests []url.Values
}

type domain struct {
	items []*item
}

type item struct {
	name       string
	attributes []attribute
}

type attribute struct {
	name, value string
}

// New starts a Server. Close must be called to stop it.
func New(optFns ...func(*Options)) *Server {
	s := &Server{domains: map[string]*domain{}}
	for _, fn := range optFns {
		fn(&s.options)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Requests returns the form values of the requests received so far.
func (s *Server) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs := make([]url.Values, len(s.requests))
	copy(rs, s.requests)
	return rs
}

// Error is a service error response.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if s.options.Latency > 0 {
		select {
		case <-time.After(s.options.Latency):
		case <-r.Context().Done():
			return
		}
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, &Error{Status: 400, Code: "InvalidParameterValue", Message: err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.PostForm)

	action := r.PostForm.Get("Action")
	encoder := xml.NewEncoder()
	root := encoder.RootElement(xml.Start(action+"Response", xml.Attr{
		Name: xml.Name{Local: "xmlns"}, Value: namespace,
	}))
	result := root.MemberElement(xml.Start(action + "Result"))

	var err error
	switch action {
	case "CreateDomain":
		err = s.createDomain(r.PostForm)
	case "DeleteDomain":
		err = s.deleteDomain(r.PostForm)
	case "ListDomains":
		err = s.listDomains(r.PostForm, result)
	case "DomainMetadata":
		err = s.domainMetadata(r.PostForm, result)
	case "PutAttributes":
		err = s.putAttributes(r.PostForm)
	case "BatchPutAttributes":
		err = s.batchPutAttributes(r.PostForm)
	case "DeleteAttributes":
		err = s.deleteAttributes(r.PostForm)
	case "GetAttributes":
		err = s.getAttributes(r.PostForm, result)
	case "Select":
		err = s.selectItems(r.PostForm, result)
	default:
		err = &Error{Status: 400, Code: "InvalidAction", Message: fmt.Sprintf("The action %s is not valid for this web service.", action)}
	}
	if err != nil {
		writeError(w, err.(*Error))
		return
	}
	result.Close()

	metadata := root.MemberElement(xml.Start("ResponseMetadata"))
	metadata.MemberElement(xml.Start("RequestId")).String(uuid.NewString())
	metadata.MemberElement(xml.Start("BoxUsage")).String(boxUsage)
	metadata.Close()
	root.Close()

	w.Header().Set("Content-Type", "text/xml")
	w.Write(encoder.Bytes())
}

func writeError(w http.ResponseWriter, e *Error) {
	encoder := xml.NewEncoder()
	root := encoder.RootElement(xml.Start("Response"))
	errs := root.MemberElement(xml.Start("Errors"))
	er := errs.MemberElement(xml.Start("Error"))
	er.MemberElement(xml.Start("Code")).String(e.Code)
	er.MemberElement(xml.Start("Message")).String(e.Message)
	er.MemberElement(xml.Start("BoxUsage")).String(boxUsage)
	er.Close()
	errs.Close()
	root.MemberElement(xml.Start("RequestID")).String(uuid.NewString())
	root.Close()

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(e.Status)
	w.Write(encoder.Bytes())
}

func required(form url.Values, key string) (string, error) {
	v := form.Get(key)
	if len(v) == 0 {
		return "", &Error{Status: 400, Code: "MissingParameter", Message: fmt.Sprintf("The request must contain the parameter %s", key)}
	}
	return v, nil
}

func (s *Server) lookupDomain(form url.Values) (*domain, error) {
	name, err := required(form, "DomainName")
	if err != nil {
		return nil, err
	}
	d, ok := s.domains[name]
	if !ok {
		return nil, &Error{Status: 400, Code: "NoSuchDomain", Message: "The specified domain does not exist."}
	}
	return d, nil
}

func (d *domain) item(name string) *item {
	for _, it := range d.items {
		if it.name == name {
			return it
		}
	}
	return nil
}

func (s *Server) createDomain(form url.Values) error {
	name, err := required(form, "DomainName")
	if err != nil {
		return err
	}
	if len(name) < 3 || len(name) > 255 || strings.IndexFunc(name, invalidDomainRune) >= 0 {
		return &Error{Status: 400, Code: "InvalidParameterValue", Message: fmt.Sprintf("Value (%s) for parameter DomainName is invalid.", name)}
	}
	if _, ok := s.domains[name]; !ok {
		s.domains[name] = &domain{}
	}
	return nil
}

func invalidDomainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '_', r == '-', r == '.':
		return false
	}
	return true
}

func (s *Server) deleteDomain(form url.Values) error {
	name, err := required(form, "DomainName")
	if err != nil {
		return err
	}
	delete(s.domains, name)
	return nil
}

func (s *Server) listDomains(form url.Values, result xml.Value) error {
	limit := maxNumberOfDomains
	if v := form.Get("MaxNumberOfDomains"); len(v) != 0 {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxNumberOfDomains {
			return &Error{Status: 400, Code: "InvalidParameterValue", Message: fmt.Sprintf("Value (%s) for parameter MaxNumberOfDomains is invalid.", v)}
		}
		limit = n
	}
	start := 0
	if v := form.Get("NextToken"); len(v) != 0 {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return &Error{Status: 400, Code: "InvalidNextToken", Message: "The specified next token is not valid."}
		}
		start = n
	}

	names := make([]string, 0, len(s.domains))
	for name := range s.domains {
		names = append(names, name)
	}
	sort.Strings(names)

	end := start + limit
	if start > len(names) {
		start = len(names)
	}
	if end > len(names) {
		end = len(names)
	}

	a := result.CollectionElement(xml.Start("DomainName")).FlattenedArray()
	for _, name := range names[start:end] {
		a.Member().String(name)
	}
	if end < len(names) {
		result.MemberElement(xml.Start("NextToken")).String(strconv.Itoa(end))
	}
	return nil
}

func (s *Server) domainMetadata(form url.Values, result xml.Value) error {
	d, err := s.lookupDomain(form)
	if err != nil {
		return err
	}

	var itemNamesSize, attrNamesSize, valueCount, valuesSize int64
	attrNames := map[string]struct{}{}
	for _, it := range d.items {
		itemNamesSize += int64(len(it.name))
		for _, a := range it.attributes {
			if _, ok := attrNames[a.name]; !ok {
				attrNames[a.name] = struct{}{}
				attrNamesSize += int64(len(a.name))
			}
			valueCount++
			valuesSize += int64(len(a.value))
		}
	}

	result.MemberElement(xml.Start("ItemCount")).Integer(int32(len(d.items)))
	result.MemberElement(xml.Start("ItemNamesSizeBytes")).Long(itemNamesSize)
	result.MemberElement(xml.Start("AttributeNameCount")).Integer(int32(len(attrNames)))
	result.MemberElement(xml.Start("AttributeNamesSizeBytes")).Long(attrNamesSize)
	result.MemberElement(xml.Start("AttributeValueCount")).Long(valueCount)
	result.MemberElement(xml.Start("AttributeValuesSizeBytes")).Long(valuesSize)
	result.MemberElement(xml.Start("Timestamp")).Long(time.Now().Unix())
	return nil
}

// replaceableAttributes returns the Name, Value and Replace members of the
// flattened list under prefix, e.g. "Attribute" or "Item.1.Attribute".
func replaceableAttributes(form url.Values, prefix string) (attrs []attribute, replace map[string]bool, err error) {
	replace = map[string]bool{}
	for i := 1; ; i++ {
		key := fmt.Sprintf("%s.%d.", prefix, i)
		name := form.Get(key + "Name")
		if len(name) == 0 {
			if _, ok := form[key+"Value"]; ok {
				return nil, nil, &Error{Status: 400, Code: "MissingParameter", Message: fmt.Sprintf("Attribute.Name missing for Attribute.Value='%s'.", form.Get(key+"Value"))}
			}
			return attrs, replace, nil
		}
		attrs = append(attrs, attribute{name: name, value: form.Get(key + "Value")})
		if form.Get(key+"Replace") == "true" {
			replace[name] = true
		}
	}
}

func checkExpected(form url.Values, it *item) error {
	name := form.Get("Expected.Name")
	if len(name) == 0 {
		return nil
	}

	var values []string
	if it != nil {
		for _, a := range it.attributes {
			if a.name == name {
				values = append(values, a.value)
			}
		}
	}

	if form.Get("Expected.Exists") == "false" {
		if len(values) != 0 {
			return &Error{Status: 409, Code: "ConditionalCheckFailed", Message: fmt.Sprintf("Conditional check failed. Attribute (%s) value exists", name)}
		}
		return nil
	}

	expected := form.Get("Expected.Value")
	if len(values) == 0 {
		return &Error{Status: 404, Code: "AttributeDoesNotExist", Message: fmt.Sprintf("Attribute (%s) does not exist", name)}
	}
	if len(values) > 1 || values[0] != expected {
		return &Error{Status: 409, Code: "ConditionalCheckFailed", Message: fmt.Sprintf("Conditional check failed. Attribute (%s) value is (%s) but was expected (%s)", name, values[0], expected)}
	}
	return nil
}

func (d *domain) put(name string, attrs []attribute, replace map[string]bool) {
	it := d.item(name)
	if it == nil {
		it = &item{name: name}
		d.items = append(d.items, it)
	}

	kept := it.attributes[:0]
	for _, a := range it.attributes {
		if !replace[a.name] {
			kept = append(kept, a)
		}
	}
	it.attributes = kept

	for _, a := range attrs {
		if !it.has(a) {
			it.attributes = append(it.attributes, a)
		}
	}
}

func (it *item) has(a attribute) bool {
	for _, v := range it.attributes {
		if v == a {
			return true
		}
	}
	return false
}

func (s *Server) putAttributes(form url.Values) error {
	d, err := s.lookupDomain(form)
	if err != nil {
		return err
	}
	itemName, err := required(form, "ItemName")
	if err != nil {
		return err
	}
	attrs, replace, err := replaceableAttributes(form, "Attribute")
	if err != nil {
		return err
	}
	if len(attrs) == 0 {
		return &Error{Status: 400, Code: "MissingParameter", Message: "The request must contain the parameter Attribute.Name"}
	}
	if err := checkExpected(form, d.item(itemName)); err != nil {
		return err
	}

	d.put(itemName, attrs, replace)
	return nil
}

func (s *Server) batchPutAttributes(form url.Values) error {
	d, err := s.lookupDomain(form)
	if err != nil {
		return err
	}

	type batchItem struct {
		name    string
		attrs   []attribute
		replace map[string]bool
	}
	var items []batchItem
	for i := 1; ; i++ {
		prefix := fmt.Sprintf("Item.%d.", i)
		name := form.Get(prefix + "ItemName")
		if len(name) == 0 {
			break
		}
		attrs, replace, err := replaceableAttributes(form, prefix+"Attribute")
		if err != nil {
			return err
		}
		items = append(items, batchItem{name: name, attrs: attrs, replace: replace})
	}
	if len(items) == 0 {
		return &Error{Status: 400, Code: "MissingParameter", Message: "The request must contain the parameter ItemName"}
	}
	if len(items) > 25 {
		return &Error{Status: 400, Code: "NumberSubmittedItemsExceeded", Message: "Too many items in a single call. Up to 25 items per call allowed."}
	}

	for _, it := range items {
		d.put(it.name, it.attrs, it.replace)
	}
	return nil
}

func (s *Server) deleteAttributes(form url.Values) error {
	d, err := s.lookupDomain(form)
	if err != nil {
		return err
	}
	itemName, err := required(form, "ItemName")
	if err != nil {
		return err
	}
	it := d.item(itemName)
	if err := checkExpected(form, it); err != nil {
		return err
	}
	if it == nil {
		return nil
	}

	var deletes []attribute
	for i := 1; ; i++ {
		key := fmt.Sprintf("Attribute.%d.", i)
		name := form.Get(key + "Name")
		if len(name) == 0 {
			break
		}
		deletes = append(deletes, attribute{name: name, value: form.Get(key + "Value")})
	}

	if len(deletes) == 0 {
		it.attributes = nil
	} else {
		kept := it.attributes[:0]
		for _, a := range it.attributes {
			if !deleted(a, deletes) {
				kept = append(kept, a)
			}
		}
		it.attributes = kept
	}

	if len(it.attributes) == 0 {
		for i, v := range d.items {
			if v == it {
				d.items = append(d.items[:i], d.items[i+1:]...)
				break
			}
		}
	}
	return nil
}

func deleted(a attribute, deletes []attribute) bool {
	for _, del := range deletes {
		if del.name == a.name && (len(del.value) == 0 || del.value == a.value) {
			return true
		}
	}
	return false
}

func (s *Server) getAttributes(form url.Values, result xml.Value) error {
	d, err := s.lookupDomain(form)
	if err != nil {
		return err
	}
	itemName, err := required(form, "ItemName")
	if err != nil {
		return err
	}

	var names []string
	for i := 1; ; i++ {
		name := form.Get(fmt.Sprintf("AttributeName.%d", i))
		if len(name) == 0 {
			break
		}
		names = append(names, name)
	}

	it := d.item(itemName)
	if it == nil {
		return nil
	}
	encodeAttributes(result, it.attributes, names)
	return nil
}

func encodeAttributes(v xml.Value, attrs []attribute, names []string) {
	a := v.CollectionElement(xml.Start("Attribute")).FlattenedArray()
	for _, attr := range attrs {
		if len(names) != 0 && !contains(names, attr.name) {
			continue
		}
		m := a.Member()
		m.MemberElement(xml.Start("Name")).String(attr.name)
		m.MemberElement(xml.Start("Value")).String(attr.value)
		m.Close()
	}
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}

func (s *Server) selectItems(form url.Values, result xml.Value) error {
	expr, err := required(form, "SelectExpression")
	if err != nil {
		return err
	}
	q, err := parseSelect(expr)
	if err != nil {
		return err
	}
	d, ok := s.domains[q.domain]
	if !ok {
		return &Error{Status: 400, Code: "NoSuchDomain", Message: "The specified domain does not exist."}
	}

	var matched []*item
	for _, it := range d.items {
		if q.itemName == nil || *q.itemName == it.name {
			matched = append(matched, it)
		}
	}

	start := 0
	if v := form.Get("NextToken"); len(v) != 0 {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return &Error{Status: 400, Code: "InvalidNextToken", Message: "The specified next token is not valid."}
		}
		start = n
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if q.limit > 0 && start+q.limit < end {
		end = start + q.limit
	}

	items := result.CollectionElement(xml.Start("Item")).FlattenedArray()
	for _, it := range matched[start:end] {
		m := items.Member()
		m.MemberElement(xml.Start("Name")).String(it.name)
		encodeAttributes(m, it.attributes, nil)
		m.Close()
	}
	if end < len(matched) {
		result.MemberElement(xml.Start("NextToken")).String(strconv.Itoa(end))
	}
	return nil
}
