package models

// LoadPhase distinguishes the splash screen from the main site.
type LoadPhase int

const (
	LoadPhaseIntro LoadPhase = iota
	LoadPhaseMain
)

func (p LoadPhase) String() string {
	if p == LoadPhaseMain {
		return "main"
	}
	return "intro"
}

// MarshalText encodes the phase by name.
func (p LoadPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// IntroPhase is the logo beat inside the splash screen.
type IntroPhase int

const (
	IntroPhaseSeparate IntroPhase = iota // two source logos shown apart
	IntroPhaseCombined                   // merged logo with title
)

func (p IntroPhase) String() string {
	if p == IntroPhaseCombined {
		return "combined"
	}
	return "separate"
}

// MarshalText encodes the phase by name.
func (p IntroPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Toast is the single notification slot.
type Toast struct {
	Message string `json:"message,omitempty"`
	Visible bool   `json:"visible"`
}

// ViewState is a snapshot of everything the page observes.
type ViewState struct {
	Load     LoadPhase  `json:"load"`
	Intro    IntroPhase `json:"intro"`
	Toast    Toast      `json:"toast"`
	Scrolled bool       `json:"scrolled"`
}

// ChangeKind names the part of ViewState that changed.
type ChangeKind int

const (
	ChangeIntroPhase ChangeKind = iota
	ChangeLoadPhase
	ChangeToast
	ChangeScroll
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeIntroPhase:
		return "intro_phase"
	case ChangeLoadPhase:
		return "load_phase"
	case ChangeToast:
		return "toast"
	case ChangeScroll:
		return "scroll"
	default:
		return "unknown"
	}
}
