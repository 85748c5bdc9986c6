package domain

import (
	"io"
	"strings"
)

// File is a candidate image chosen by the user. MIMEType and Size are the
// values declared by the client, Content yields the actual bytes.
type File struct {
	Name     string
	MIMEType string
	Size     int64
	Content  io.Reader
}

func (f *File) IsImage() bool {
	return strings.HasPrefix(f.MIMEType, "image/")
}
