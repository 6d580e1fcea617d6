package structural

import (
	"fmt"
	"io"
)

// Device is the implementation side of the bridge.
type Device interface {
	Name() string
	SetPower(on bool)
	PoweredOn() bool
}

type TV struct {
	on bool
}

func (t *TV) Name() string     { return "tv" }
func (t *TV) SetPower(on bool) { t.on = on }
func (t *TV) PoweredOn() bool  { return t.on }

type Radio struct {
	on bool
}

func (r *Radio) Name() string     { return "radio" }
func (r *Radio) SetPower(on bool) { r.on = on }
func (r *Radio) PoweredOn() bool  { return r.on }

// Remote is the abstraction side; it varies independently of the device it
// drives.
type Remote struct {
	device Device
}

func NewRemote(d Device) *Remote {
	return &Remote{device: d}
}

func (r *Remote) TogglePower() string {
	r.device.SetPower(!r.device.PoweredOn())
	state := "off"
	if r.device.PoweredOn() {
		state = "on"
	}
	return fmt.Sprintf("remote: %s is now %s", r.device.Name(), state)
}

// AdvancedRemote extends the abstraction without touching any device.
type AdvancedRemote struct {
	Remote
}

func NewAdvancedRemote(d Device) *AdvancedRemote {
	return &AdvancedRemote{Remote: Remote{device: d}}
}

func (r *AdvancedRemote) PowerOff() string {
	r.device.SetPower(false)
	return fmt.Sprintf("advanced remote: %s forced off", r.device.Name())
}

func DemoBridge(w io.Writer) error {
	tv := &TV{}
	radio := &Radio{}

	fmt.Fprintln(w, NewRemote(tv).TogglePower())
	fmt.Fprintln(w, NewRemote(radio).TogglePower())

	advanced := NewAdvancedRemote(tv)
	fmt.Fprintln(w, advanced.PowerOff())
	return nil
}
