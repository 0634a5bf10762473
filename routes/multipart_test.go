package routes

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"
)

type multipartBody struct {
	w *multipart.Writer
}

func newMultipart(buf *bytes.Buffer) *multipartBody {
	return &multipartBody{w: multipart.NewWriter(buf)}
}

func (m *multipartBody) file(t *testing.T, field, name, contentType string, data []byte) {
	t.Helper()
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := m.w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
}

func (m *multipartBody) field(t *testing.T, name, value string) {
	t.Helper()
	if err := m.w.WriteField(name, value); err != nil {
		t.Fatalf("write field: %v", err)
	}
}

func (m *multipartBody) close(t *testing.T) {
	t.Helper()
	if err := m.w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
}

func (m *multipartBody) contentType() string { return m.w.FormDataContentType() }
