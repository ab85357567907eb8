package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

type formField struct {
	Name  string
	Value string
}

// formBuilder assembles a multipart body with parts in the exact order they
// are appended. File readers are consumed once and closed as soon as the copy
// finishes, whether or not the build succeeds.
type formBuilder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newFormBuilder() *formBuilder {
	fb := &formBuilder{}
	fb.writer = multipart.NewWriter(&fb.buf)
	return fb
}

func (fb *formBuilder) field(name, value string) {
	if fb.err != nil {
		return
	}
	fb.err = fb.writer.WriteField(name, value)
}

func (fb *formBuilder) addFields(fields []formField) {
	for _, f := range fields {
		fb.field(f.Name, f.Value)
	}
}

func (fb *formBuilder) file(name, fileName, contentType string, r io.Reader) {
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}
	if fb.err != nil {
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, fileName))
	header.Set("Content-Type", contentType)

	part, err := fb.writer.CreatePart(header)
	if err != nil {
		fb.err = err
		return
	}
	if _, err := io.Copy(part, r); err != nil {
		fb.err = err
	}
}

func (fb *formBuilder) build() (io.Reader, string, error) {
	if fb.err != nil {
		return nil, "", fb.err
	}
	if err := fb.writer.Close(); err != nil {
		return nil, "", err
	}
	return &fb.buf, fb.writer.FormDataContentType(), nil
}
