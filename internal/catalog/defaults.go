package catalog

import (
	"github.com/danmuck/patternctl/internal/behavioral"
	"github.com/danmuck/patternctl/internal/creational"
	"github.com/danmuck/patternctl/internal/structural"
)

// Default builds the registry of shipped patterns in canonical family
// order.
func Default() *Registry {
	r := NewRegistry()

	r.Register(Func("singleton", FamilyCreational,
		"one lazily created shared instance", creational.DemoSingleton))
	r.Register(Func("factory", FamilyCreational,
		"instantiation delegated to a channel selector", creational.DemoFactory))
	r.Register(Func("abstract-factory", FamilyCreational,
		"mutually consistent product families", creational.DemoAbstractFactory))
	r.Register(Func("builder", FamilyCreational,
		"step-wise assembly with defaults", creational.DemoBuilder))
	r.Register(Func("prototype", FamilyCreational,
		"deep copies under fresh identity", creational.DemoPrototype))

	r.Register(Func("adapter", FamilyStructural,
		"modern surface over a legacy processor", structural.DemoAdapter))
	r.Register(Func("bridge", FamilyStructural,
		"remotes and devices varying independently", structural.DemoBridge))
	r.Register(Func("composite", FamilyStructural,
		"uniform display over a file tree", structural.DemoComposite))
	r.Register(Func("decorator", FamilyStructural,
		"car wash add-ons stacking cost", structural.DemoDecorator))
	r.Register(Func("facade", FamilyStructural,
		"one order call over three subsystems", structural.DemoFacade))
	r.Register(Func("flyweight", FamilyStructural,
		"interned glyphs, per-call positions", structural.DemoFlyweight))
	r.Register(Func("proxy", FamilyStructural,
		"guarded, lazily opened archive", structural.DemoProxy))

	r.Register(Func("strategy", FamilyBehavioral,
		"swappable shipping quotes", behavioral.DemoStrategy))

	return r
}
