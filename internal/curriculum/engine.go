package curriculum

import (
	"github.com/abhisek/ks2maths/internal/bodmas"
	"github.com/abhisek/ks2maths/internal/convert"
	"github.com/abhisek/ks2maths/internal/money"
	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/shapes"
	"github.com/abhisek/ks2maths/internal/volume"
)

// Generators returns one generator per topic.
func Generators() []problemgen.Generator {
	return []problemgen.Generator{
		money.New(),
		convert.NewMetric(),
		convert.NewYear4(),
		convert.NewImperial(),
		shapes.NewPerimeter(),
		shapes.NewRectilinear(),
		shapes.NewArea(),
		shapes.NewFormulas(),
		volume.NewCubes(),
		volume.NewCuboids(),
		bodmas.New(),
	}
}

// NewEngine builds an engine with every topic generator registered.
func NewEngine(opts ...problemgen.Option) (*problemgen.Engine, error) {
	opts = append([]problemgen.Option{problemgen.WithGenerators(Generators()...)}, opts...)
	return problemgen.NewEngine(opts...)
}
