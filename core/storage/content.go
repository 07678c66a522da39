package storage

import (
	"bytes"
	"io"
)

// DefaultContentType is used when a content value carries no MIME type.
const DefaultContentType = "application/octet-stream"

const sizeUnknown = -1

// Content is what Save uploads: a byte source, its length (or unknown), and
// an optional MIME type. Construct it with Bytes, SizedReader or
// UnsizedReader; the zero value behaves as empty content.
type Content struct {
	data        []byte
	reader      io.Reader
	size        int64
	contentType string
}

// Bytes wraps an in-memory payload. contentType may be empty. The value is
// reusable: every Save reads the slice from the start.
func Bytes(data []byte, contentType string) Content {
	return Content{
		data:        data,
		size:        int64(len(data)),
		contentType: contentType,
	}
}

// SizedReader wraps a stream whose length is already known. The reader is
// consumed by Save and not reset afterwards, so the value is single-use.
func SizedReader(r io.Reader, size int64, contentType string) Content {
	return Content{reader: r, size: size, contentType: contentType}
}

// UnsizedReader wraps a stream of unknown length. Save buffers it fully in
// memory to learn the length before uploading. Single-use, like SizedReader.
func UnsizedReader(r io.Reader, contentType string) Content {
	return Content{reader: r, size: sizeUnknown, contentType: contentType}
}

// ContentType returns the MIME type, falling back to DefaultContentType.
func (c Content) ContentType() string {
	if c.contentType == "" {
		return DefaultContentType
	}
	return c.contentType
}

// materialize returns a reader and an exact byte count, buffering unsized
// streams. A zero-value Content materializes as zero bytes.
func (c Content) materialize() (io.Reader, int64, error) {
	if c.data != nil {
		return bytes.NewReader(c.data), int64(len(c.data)), nil
	}
	if c.reader == nil {
		return bytes.NewReader(nil), 0, nil
	}
	if c.size != sizeUnknown {
		return c.reader, c.size, nil
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, c.reader)
	if err != nil {
		return nil, 0, err
	}
	return &buf, n, nil
}
