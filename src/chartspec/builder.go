package chartspec

// Builder assembles a ChartSpec step by step. Build validates and returns an
// independent spec; the builder can be reused afterwards.
type Builder struct {
	spec ChartSpec
}

// NewBuilder starts a chart with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{spec: ChartSpec{title: title}}
}

func (b *Builder) XLabel(s string) *Builder { b.spec.xLabel = s; return b }
func (b *Builder) YLabel(s string) *Builder { b.spec.yLabel = s; return b }
func (b *Builder) Note(s string) *Builder   { b.spec.note = s; return b }

// Size requests a pixel size for the chart.
func (b *Builder) Size(width, height int) *Builder {
	b.spec.size = Size{Width: width, Height: height}
	return b
}

// X sets the shared x-axis values.
func (b *Builder) X(x ...float64) *Builder {
	b.spec.x = append([]float64(nil), x...)
	return b
}

// Add appends series in legend order.
func (b *Builder) Add(series ...Series) *Builder {
	for _, s := range series {
		b.spec.series = append(b.spec.series, s.clone())
	}
	return b
}

// Line is shorthand for Add with the default circle marker and solid line.
func (b *Builder) Line(name string, values ...float64) *Builder {
	return b.Add(Series{Name: name, Values: values})
}

// Build validates the accumulated description.
func (b *Builder) Build() (*ChartSpec, error) {
	if err := validate(b.spec.title, b.spec.x, b.spec.series); err != nil {
		return nil, err
	}
	out := b.spec
	out.x = append([]float64(nil), b.spec.x...)
	out.series = make([]Series, len(b.spec.series))
	for i, s := range b.spec.series {
		out.series[i] = s.clone()
	}
	return &out, nil
}
