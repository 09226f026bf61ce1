package domain

// Anchor is the reference point a relative slot time is offset from.
// Slot is only meaningful when Kind is AnchorSlot.
type Anchor struct {
	Kind AnchorKind
	Slot int
}

var (
	WakeAnchor     = Anchor{Kind: AnchorWake}
	SleepAnchor    = Anchor{Kind: AnchorSleep}
	TrainingAnchor = Anchor{Kind: AnchorTraining}
)

// SlotAnchor anchors a time to another slot's resolved time.
func SlotAnchor(n int) Anchor {
	return Anchor{Kind: AnchorSlot, Slot: n}
}

// TimeRef is either an absolute minute-of-day or a signed offset from an anchor.
type TimeRef struct {
	Kind    TimeRefKind
	Minutes int
	Anchor  Anchor
	Offset  int
}

func AbsoluteAt(minutes int) TimeRef {
	return TimeRef{Kind: RefAbsolute, Minutes: minutes}
}

func RelativeTo(a Anchor, offset int) TimeRef {
	return TimeRef{Kind: RefRelative, Anchor: a, Offset: offset}
}

// DependsOnSlot reports whether resolving r requires another slot's time.
func (r TimeRef) DependsOnSlot() bool {
	return r.Kind == RefRelative && r.Anchor.Kind == AnchorSlot
}

type SlotDefinition struct {
	Number int
	Name   string
	Ref    TimeRef
}

// ResolvedSlot is a slot with its absolute time. Minutes may exceed 1439
// when the slot rolls over past midnight.
type ResolvedSlot struct {
	Number           int
	Minutes          int
	Label            string
	TrainingAdjacent bool
}
