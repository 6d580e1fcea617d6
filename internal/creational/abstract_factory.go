package creational

import (
	"fmt"
	"io"
	"strings"
)

// Button and Toggle are the product kinds a widget family must provide.
type Button interface {
	Render() string
}

type Toggle interface {
	Render() string
}

// WidgetFactory produces a mutually consistent widget family.
type WidgetFactory interface {
	Theme() string
	NewButton(label string) Button
	NewToggle(label string) Toggle
}

type themedButton struct {
	theme string
	label string
}

func (b themedButton) Render() string {
	return fmt.Sprintf("[%s button] %s", b.theme, b.label)
}

type themedToggle struct {
	theme string
	label string
}

func (t themedToggle) Render() string {
	return fmt.Sprintf("[%s toggle] %s", t.theme, t.label)
}

type lightFactory struct{}

func (lightFactory) Theme() string { return "light" }
func (lightFactory) NewButton(label string) Button {
	return themedButton{theme: "light", label: label}
}
func (lightFactory) NewToggle(label string) Toggle {
	return themedToggle{theme: "light", label: label}
}

type darkFactory struct{}

func (darkFactory) Theme() string { return "dark" }
func (darkFactory) NewButton(label string) Button {
	return themedButton{theme: "dark", label: label}
}
func (darkFactory) NewToggle(label string) Toggle {
	return themedToggle{theme: "dark", label: label}
}

// FactoryFor selects the widget family for a theme name.
func FactoryFor(theme string) (WidgetFactory, error) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return lightFactory{}, nil
	case "dark":
		return darkFactory{}, nil
	default:
		return nil, fmt.Errorf("unknown widget theme: %s", theme)
	}
}

func DemoAbstractFactory(w io.Writer) error {
	for _, theme := range []string{"light", "dark"} {
		factory, err := FactoryFor(theme)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, factory.NewButton("Save").Render())
		fmt.Fprintln(w, factory.NewToggle("Autosync").Render())
	}
	return nil
}
