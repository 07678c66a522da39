package storage

import "bytes"

// File is the read handle returned by Open: the full object content held in
// memory, seekable, positioned at offset 0. Close is a no-op; the store
// response it was read from is already released.
type File struct {
	*bytes.Reader
	name        string
	contentType string
}

// NewFile wraps data in a File named name with the given MIME type.
func NewFile(name string, data []byte, contentType string) *File {
	return &File{Reader: bytes.NewReader(data), name: name, contentType: contentType}
}

// Name returns the object name the file was opened under.
func (f *File) Name() string {
	return f.name
}

// ContentType returns the MIME type the object was stored with, falling back
// to DefaultContentType when the store recorded none.
func (f *File) ContentType() string {
	if f.contentType == "" {
		return DefaultContentType
	}
	return f.contentType
}

// Close implements io.Closer. It never fails.
func (f *File) Close() error {
	return nil
}
