package structural

import (
	"fmt"
	"io"
	"strings"
)

// Node is the uniform surface files and folders share.
type Node interface {
	DisplayName() string
	Display(w io.Writer, depth int)
}

type File struct {
	name string
}

func NewFile(name string) *File {
	return &File{name: name}
}

func (f *File) DisplayName() string { return f.name }

func (f *File) Display(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth), f.name)
}

// Folder contains files and folders and displays them recursively in
// insertion order.
type Folder struct {
	name     string
	children []Node
}

func NewFolder(name string) *Folder {
	return &Folder{name: name}
}

func (f *Folder) DisplayName() string { return f.name }

func (f *Folder) Add(children ...Node) *Folder {
	f.children = append(f.children, children...)
	return f
}

func (f *Folder) Display(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s+ %s/\n", strings.Repeat("  ", depth), f.name)
	for _, child := range f.children {
		child.Display(w, depth+1)
	}
}

func DemoComposite(w io.Writer) error {
	root := NewFolder("project").Add(
		NewFile("README.md"),
		NewFolder("src").Add(
			NewFile("main.go"),
			NewFile("main_test.go"),
		),
		NewFolder("docs").Add(
			NewFile("intro.md"),
		),
	)
	root.Display(w, 0)
	return nil
}
