package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RiskLevel is the coarse risk bucket derived from a risk score.
type RiskLevel int

const (
	// RiskLow covers scores from 0 up to and including LowRiskMaxScore.
	RiskLow RiskLevel = iota

	// RiskMedium covers scores above LowRiskMaxScore up to and including MediumRiskMaxScore.
	RiskMedium

	// RiskHigh covers scores above MediumRiskMaxScore.
	RiskHigh
)

// Score boundaries for the risk levels. Both boundaries are inclusive on the lower level.
const (
	LowRiskMaxScore    = 40
	MediumRiskMaxScore = 70

	// MaxScore is the exclusive upper bound of a risk score.
	MaxScore = 100
)

// Display colors used by the site and the terminal report.
const (
	ColorGreen = "#10b981"
	ColorAmber = "#f59e0b"
	ColorRed   = "#ef4444"
)

// LevelForScore maps a score to its risk level.
// It is a pure function of the score: 40 is Low, 41 and 70 are Medium, 71 is High.
func LevelForScore(score int) RiskLevel {
	switch {
	case score > MediumRiskMaxScore:
		return RiskHigh
	case score > LowRiskMaxScore:
		return RiskMedium
	default:
		return RiskLow
	}
}

var riskLevelNames = []string{"low", "medium", "high"}

// String returns the display name ("Low", "Medium", "High").
func (l RiskLevel) String() string {
	if l < RiskLow || l > RiskHigh {
		return "Unknown"
	}
	return displayName(riskLevelNames[l])
}

// Color returns the hex display color for the level.
func (l RiskLevel) Color() string {
	switch l {
	case RiskLow:
		return ColorGreen
	case RiskMedium:
		return ColorAmber
	default:
		return ColorRed
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l RiskLevel) MarshalText() ([]byte, error) {
	if l < RiskLow || l > RiskHigh {
		return nil, fmt.Errorf("%w: risk level %d", ErrUnknownEnumValue, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is case-insensitive.
func (l *RiskLevel) UnmarshalText(text []byte) error {
	level, err := ParseRiskLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseRiskLevel parses a risk level name, ignoring case.
func ParseRiskLevel(s string) (RiskLevel, error) {
	for i, name := range riskLevelNames {
		if strings.EqualFold(s, name) {
			return RiskLevel(i), nil
		}
	}
	return RiskLow, fmt.Errorf("%w: risk level %q", ErrUnknownEnumValue, s)
}

// displayName title-cases an enum name.
// A new Caser is created per call because Casers are stateful and must not be
// shared between goroutines.
func displayName(name string) string {
	return cases.Title(language.English).String(name)
}
