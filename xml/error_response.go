package xml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ErrorComponents are the components of a query protocol error response.
type ErrorComponents struct {
	Code      string
	Message   string
	Type      string
	RequestID string
}

// GetErrorResponseComponents returns the error components from an xml error
// response body. Three layouts are understood:
//
//	<ErrorResponse><Error><Code/><Message/></Error><RequestId/></ErrorResponse>
//	<Response><Errors><Error><Code/><Message/></Error></Errors><RequestID/></Response>
//	<Error><Code/><Message/><RequestId/></Error>
//
// The last, unwrapped layout is only used when noErrorWrapping is set.
func GetErrorResponseComponents(r io.Reader, noErrorWrapping bool) (ErrorComponents, error) {
	rb, err := io.ReadAll(r)
	if err != nil {
		return ErrorComponents{}, err
	}

	if noErrorWrapping {
		var errResponse errorBody
		if err := xml.Unmarshal(rb, &errResponse); err != nil {
			return ErrorComponents{}, fmt.Errorf("error while fetching xml error response code: %w", err)
		}
		return errResponse.components(errResponse.RequestID), nil
	}

	var errResponse errorResponse
	if err := xml.Unmarshal(rb, &errResponse); err != nil {
		return ErrorComponents{}, fmt.Errorf("error while fetching xml error response code: %w", err)
	}

	requestID := errResponse.RequestID
	if len(requestID) == 0 {
		requestID = errResponse.RequestIDUpper
	}

	if len(errResponse.Errors) != 0 {
		return errResponse.Errors[0].components(requestID), nil
	}
	return errResponse.Err.components(requestID), nil
}

// errorResponse represents the outer error response body
// i.e. <ErrorResponse>...</ErrorResponse> or <Response>...</Response>
type errorResponse struct {
	Err            errorBody   `xml:"Error"`
	Errors         []errorBody `xml:"Errors>Error"`
	RequestID      string      `xml:"RequestId"`
	RequestIDUpper string      `xml:"RequestID"`
}

// errorBody represents the inner error body
// i.e. <Error>...</Error>
type errorBody struct {
	Type      string `xml:"Type"`
	Code      string `xml:"Code"`
	Message   string `xml:"Message"`
	RequestID string `xml:"RequestId"`
}

func (b errorBody) components(requestID string) ErrorComponents {
	return ErrorComponents{
		Code:      b.Code,
		Message:   b.Message,
		Type:      b.Type,
		RequestID: requestID,
	}
}
