package testing

import (
	"bytes"
	"fmt"
	"net/url"
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/awslabs/aws-query-go/testing/xml_testing"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// CompareValues compares two values and returns an error describing the
// difference if they are not equal.
func CompareValues(expect, actual interface{}, opts ...cmp.Option) error {
	if diff := cmp.Diff(expect, actual, opts...); len(diff) != 0 {
		return fmt.Errorf("values mismatch (-expect +actual):\n%s", diff)
	}
	return nil
}

// XMLEqual asserts two xml documents by sorting the XML and comparing the strings
// It returns an error in case of mismatch or in case of malformed xml found while sorting.
// In case of mismatched XML, the error string will contain the diff between the two XMLs.
func XMLEqual(expectBytes, actualBytes []byte) error {
	_, err := xml_testing.AssertXML(bytes.NewReader(actualBytes), bytes.NewReader(expectBytes))
	return err
}

// AssertXMLEqual compares two XML documents and identifies if the documents
// contain the same values. Emits a testing error, and returns false if the
// documents are not equal.
func AssertXMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML documents to be equal, %v", err)
		return false
	}

	return true
}

// URLFormEqual compares two URLForm documents and identifies if the documents
// contain the same values. Returns an error if the two documents are not
// equal.
func URLFormEqual(expectBytes, actualBytes []byte) error {
	expect, err := url.ParseQuery(string(expectBytes))
	if err != nil {
		return fmt.Errorf("failed to parse expected bytes, %v", err)
	}

	actual, err := url.ParseQuery(string(actualBytes))
	if err != nil {
		return fmt.Errorf("failed to parse actual bytes, %v", err)
	}

	for _, vs := range [...]url.Values{expect, actual} {
		for _, v := range vs {
			sort.Strings(v)
		}
	}

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		return fmt.Errorf("query values mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertURLFormEqual compares two URLForm documents and identifies if the
// documents contain the same values. Emits a testing error, and returns false
// if the documents are not equal.
func AssertURLFormEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := URLFormEqual(expect, actual); err != nil {
		t.Errorf("expect URLForm documents to be equal, %v", err)
		return false
	}

	return true
}
