package models

// Entry types reported by the contents layer.
const (
	EntryTypeDirectory = "directory"
	EntryTypeNotebook  = "notebook"
	EntryTypeFile      = "file"
)

// Entry describes a single item known to the contents layer: a directory,
// a notebook, or a plain file. It is the Go counterpart of the content model
// the storage backend answers path questions with.
type Entry struct {
	// Name is the last path segment of the entry.
	Name string `json:"name"`

	// Path is the API path of the entry, relative to the server root,
	// always slash-separated and without a leading slash.
	Path string `json:"path"`

	// Type is one of EntryTypeDirectory, EntryTypeNotebook or EntryTypeFile.
	Type string `json:"type"`

	// Content holds the raw file bytes when the entry was fetched with
	// content; nil otherwise.
	Content []byte `json:"content,omitempty"`
}
