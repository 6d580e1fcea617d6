package creational

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Document is the prototype; clones copy content but never identity.
type Document struct {
	ID    string
	Title string
	Tags  []string
}

func NewDocument(title string, tags ...string) *Document {
	return &Document{
		ID:    uuid.NewString(),
		Title: title,
		Tags:  append([]string(nil), tags...),
	}
}

// Clone deep-copies the document under a fresh identity.
func (d *Document) Clone() *Document {
	return &Document{
		ID:    uuid.NewString(),
		Title: d.Title,
		Tags:  append([]string(nil), d.Tags...),
	}
}

func (d *Document) String() string {
	return fmt.Sprintf("doc %.8s %q tags=%v", d.ID, d.Title, d.Tags)
}

func DemoPrototype(w io.Writer) error {
	original := NewDocument("release checklist", "ops", "v2")
	clone := original.Clone()
	clone.Title = "release checklist (draft)"
	clone.Tags = append(clone.Tags, "wip")

	fmt.Fprintln(w, original)
	fmt.Fprintln(w, clone)
	fmt.Fprintf(w, "distinct identity: %t\n", original.ID != clone.ID)
	fmt.Fprintf(w, "original tags untouched: %v\n", original.Tags)
	return nil
}
