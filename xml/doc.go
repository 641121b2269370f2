/*
Package xml implements the XML half of the query protocol: a streaming
Cursor with shape unmarshalers for response bodies, and an Encoder for
writing XML documents.

# Decoding

A Cursor is a pull style traversal context over an XML document. It tracks
the element nesting depth and the current element path, and can test the
current position against a path expression at a given depth.

Response shapes are declared as a Shape, an ordered table of Fields. Each
field pairs a tag with a typed setter. Unmarshaling a shape pulls events from
the cursor until the shape's closing element or the end of the document is
reached. The first field matching an element wins, and elements matching no
field are skipped.

The outermost shape of a response sits below an envelope of wrapper elements,
for example

	<ModifyDBParameterGroupResponse>
	  <ModifyDBParameterGroupResult>
	    <DBParameterGroupName>mygroup</DBParameterGroupName>
	  </ModifyDBParameterGroupResult>
	</ModifyDBParameterGroupResponse>

A shape unmarshaled at the start of the document looks for its fields
CursorOptions.EnvelopeDepth levels deeper than a nested shape would.

# Encoding

An Encoder writes a document element by element. Scalar writers on a Value
close the element, elements with members and wrapped Array and Map
collections must be closed by the caller. Service test fakes use it to
produce response documents.
*/
package xml
