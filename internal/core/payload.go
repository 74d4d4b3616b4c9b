package core

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// Payload is one unit of vendor data already retrieved by the caller: a
// JSON document, an HTML page or a directory listing.
type Payload struct {
	Body []byte
	// Source is the locator the body came from. HTML adapters resolve
	// relative links against it.
	Source string
}

// NewPayload wraps body retrieved from source.
func NewPayload(body []byte, source string) Payload {
	return Payload{Body: body, Source: source}
}

// Empty reports whether the payload carries no data. A JSON null counts as
// empty.
func (p Payload) Empty() bool {
	b := bytes.TrimSpace(p.Body)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

// JSON parses the body. Invalid JSON yields a result for which Exists is
// false.
func (p Payload) JSON() gjson.Result {
	if p.Empty() || !gjson.ValidBytes(p.Body) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(p.Body)
}

// Text returns the body as a string.
func (p Payload) Text() string {
	return string(p.Body)
}

// Items returns the elements of a JSON array body, or of the array found
// at path when path is not empty. A single object is returned as a one
// element list so adapters can be fed one release at a time.
func (p Payload) Items(path string) []gjson.Result {
	root := p.JSON()
	if !root.Exists() {
		return nil
	}
	if path != "" {
		root = root.Get(path)
	}
	switch {
	case root.IsArray():
		return root.Array()
	case root.IsObject():
		return []gjson.Result{root}
	}
	return nil
}
