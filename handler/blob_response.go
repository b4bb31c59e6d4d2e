package handler

import "net/http"

type blobResponse struct {
	status      int
	contentType string
	body        []byte
}

// Blob writes pre-encoded bytes with the given content type.
func Blob(contentType string, body []byte) Response {
	return blobResponse{status: http.StatusOK, contentType: contentType, body: body}
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	if b.contentType != "" {
		w.Header().Set("Content-Type", b.contentType)
	}
	w.WriteHeader(b.status)
	_, err := w.Write(b.body)
	return err
}
