package widget

import "fmt"

// Insets is a four-sided tuple used for padding and margins.
type Insets struct {
	Left, Top, Right, Bottom int
}

// InsetsAll returns insets with the same value on every side.
func InsetsAll(v int) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// InsetsSymmetric returns insets with horizontal and vertical values.
func InsetsSymmetric(horizontal, vertical int) Insets {
	return Insets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// Size dimension sentinels.
const (
	// MatchParent fills the space offered by the parent.
	MatchParent = -1
	// WrapContent sizes the widget to its content.
	WrapContent = -2
)

// Size is a width/height pair. Either dimension may be MatchParent or WrapContent.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%sx%s", dimString(s.Width), dimString(s.Height))
}

func dimString(v int) string {
	switch v {
	case MatchParent:
		return "match"
	case WrapContent:
		return "wrap"
	default:
		return fmt.Sprint(v)
	}
}

// Gravity positions a widget within the space its parent gives it.
type Gravity uint8

const (
	GravityNone             Gravity = 0
	GravityLeft             Gravity = 1 << 0
	GravityRight            Gravity = 1 << 1
	GravityCenterHorizontal Gravity = 1 << 2
	GravityTop              Gravity = 1 << 3
	GravityBottom           Gravity = 1 << 4
	GravityCenterVertical   Gravity = 1 << 5

	GravityCenter = GravityCenterHorizontal | GravityCenterVertical

	horizontalGravityMask = GravityLeft | GravityRight | GravityCenterHorizontal
	verticalGravityMask   = GravityTop | GravityBottom | GravityCenterVertical
)

// Horizontal returns the horizontal component of g.
func (g Gravity) Horizontal() Gravity { return g & horizontalGravityMask }

// Vertical returns the vertical component of g.
func (g Gravity) Vertical() Gravity { return g & verticalGravityMask }

// Verb is a relative positioning rule.
type Verb uint8

const (
	AlignParentLeft Verb = iota
	AlignParentTop
	AlignParentRight
	AlignParentBottom
	CenterInParent
	CenterHorizontal
	CenterVertical
	LeftOf
	RightOf
	Above
	Below
	AlignLeft
	AlignTop
	AlignRight
	AlignBottom

	verbCount
)

// NumVerbs is the number of relative positioning verbs.
const NumVerbs = int(verbCount)

// Valid reports whether v is one of the declared verbs.
func (v Verb) Valid() bool { return v < verbCount }

// True is the anchor of rules that take no sibling (AlignParent*, Center*).
const True = -1

// Rule pairs a verb with its anchor: a sibling id, or True. Anchor 0 means
// "no rule", so widgets used as anchors need a non-zero id.
type Rule struct {
	Verb   Verb
	Anchor int
}

// RuleSet holds at most one anchor per verb. Zero means the verb is unset.
// It is a fixed-size array so that rule sets compare with ==.
type RuleSet [verbCount]int

// NewRuleSet builds a rule set from rules. Later rules for the same verb win.
// Rules with an unknown verb are dropped.
func NewRuleSet(rules ...Rule) RuleSet {
	var rs RuleSet
	for _, r := range rules {
		if r.Verb.Valid() {
			rs[r.Verb] = r.Anchor
		}
	}
	return rs
}

// Get returns the anchor for verb and whether it is set.
func (rs RuleSet) Get(verb Verb) (int, bool) {
	if !verb.Valid() {
		return 0, false
	}
	a := rs[verb]
	return a, a != 0
}

// FontStyle selects the weight and slant of a typeface.
type FontStyle uint8

const (
	StyleNormal FontStyle = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// Typeface selects the font used by a TextWidget.
type Typeface struct {
	Family string
	Style  FontStyle
	Size   float64
}

// Shadow is a text shadow.
type Shadow struct {
	Radius float64
	DX, DY float64
	Color  uint32
}
