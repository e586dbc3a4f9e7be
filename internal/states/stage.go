package states

import "fmt"

// StageSection is the phase of a timed ability. Sections are ordered: within
// one pass a state only moves forward.
type StageSection uint8

// Stage sections. StageNone is reported by states that have no stages.
const (
	StageNone StageSection = iota
	StageBuildup
	StageCharge
	StageAction
	StageRecover
)

var stageNames = map[StageSection]string{
	StageNone:    "none",
	StageBuildup: "buildup",
	StageCharge:  "charge",
	StageAction:  "action",
	StageRecover: "recover",
}

// String returns the lowercase section name
func (s StageSection) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// MarshalText encodes the section by name
func (s StageSection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a section name
func (s *StageSection) UnmarshalText(text []byte) error {
	for section, name := range stageNames {
		if name == string(text) {
			*s = section
			return nil
		}
	}
	return fmt.Errorf("unknown stage section %q", string(text))
}
