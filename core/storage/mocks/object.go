package mocks

import "bytes"

// Object is a canned storage.Object backed by a byte slice.
type Object struct {
	*bytes.Reader
	contentType string
	// Closed records whether Close was called.
	Closed bool
}

// NewObject creates an Object serving data with the given content type.
func NewObject(data []byte, contentType string) *Object {
	return &Object{Reader: bytes.NewReader(data), contentType: contentType}
}

func (o *Object) ContentType() string {
	return o.contentType
}

func (o *Object) Close() error {
	o.Closed = true
	return nil
}
