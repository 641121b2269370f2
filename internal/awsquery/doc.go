// Package awsquery implements the request plumbing shared by the query
// protocol services: form encoded requests, XML responses unmarshaled with
// an xml.Shape, and the XML error response.
package awsquery
