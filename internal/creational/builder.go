package creational

import (
	"fmt"
	"io"
)

// Workstation is the assembled product.
type Workstation struct {
	CPU      string
	MemoryGB int
	Storage  string
	GPU      string
}

func (ws Workstation) String() string {
	return fmt.Sprintf("workstation: cpu=%s mem=%dGB storage=%s gpu=%s",
		ws.CPU, ws.MemoryGB, ws.Storage, ws.GPU)
}

// WorkstationBuilder assembles a Workstation step by step. Omitted steps
// fall back to defaults at Build time.
type WorkstationBuilder struct {
	ws Workstation
}

func NewWorkstationBuilder() *WorkstationBuilder {
	return &WorkstationBuilder{}
}

func (b *WorkstationBuilder) CPU(model string) *WorkstationBuilder {
	b.ws.CPU = model
	return b
}

func (b *WorkstationBuilder) Memory(gb int) *WorkstationBuilder {
	b.ws.MemoryGB = gb
	return b
}

func (b *WorkstationBuilder) Storage(kind string) *WorkstationBuilder {
	b.ws.Storage = kind
	return b
}

func (b *WorkstationBuilder) GPU(model string) *WorkstationBuilder {
	b.ws.GPU = model
	return b
}

func (b *WorkstationBuilder) Build() Workstation {
	ws := b.ws
	if ws.CPU == "" {
		ws.CPU = "4-core"
	}
	if ws.MemoryGB == 0 {
		ws.MemoryGB = 16
	}
	if ws.Storage == "" {
		ws.Storage = "512GB-ssd"
	}
	if ws.GPU == "" {
		ws.GPU = "integrated"
	}
	return ws
}

func DemoBuilder(w io.Writer) error {
	full := NewWorkstationBuilder().
		CPU("16-core").
		Memory(64).
		Storage("2TB-nvme").
		GPU("discrete").
		Build()
	fmt.Fprintln(w, full)

	minimal := NewWorkstationBuilder().CPU("8-core").Build()
	fmt.Fprintln(w, minimal)
	return nil
}
