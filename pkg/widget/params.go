package widget

// ParamsKind identifies which positioning model a LayoutParams belongs to.
// A container decides the kind once, when the child is created.
type ParamsKind uint8

const (
	// ParamsPlain carries size and margins only.
	ParamsPlain ParamsKind = iota
	// ParamsLinear adds weight and gravity for weighted linear layouts.
	ParamsLinear
	// ParamsFrame adds gravity for stacking layouts.
	ParamsFrame
	// ParamsRelative adds positioning rules.
	ParamsRelative
)

func (k ParamsKind) String() string {
	switch k {
	case ParamsLinear:
		return "linear"
	case ParamsFrame:
		return "frame"
	case ParamsRelative:
		return "relative"
	default:
		return "plain"
	}
}

// LayoutParams is a tagged variant over the positioning models. Fields that do
// not apply to Kind are ignored by the container.
type LayoutParams struct {
	Kind   ParamsKind
	Width  int
	Height int
	Margin Insets

	// Weight distributes leftover space (ParamsLinear).
	Weight float64
	// Gravity positions the child in its slot (ParamsLinear, ParamsFrame).
	Gravity Gravity
	// Rules positions the child against siblings (ParamsRelative).
	Rules RuleSet
}

// NewLayoutParams returns wrap-content params of the given kind.
func NewLayoutParams(kind ParamsKind) *LayoutParams {
	return &LayoutParams{Kind: kind, Width: WrapContent, Height: WrapContent}
}

// SupportsGravity reports whether the kind honours Gravity.
func (p *LayoutParams) SupportsGravity() bool {
	return p.Kind == ParamsLinear || p.Kind == ParamsFrame
}
