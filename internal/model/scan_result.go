package model

import (
	"fmt"
	"strings"
)

// MaxTokenAgeDays is the exclusive upper bound of a simulated token age.
const MaxTokenAgeDays = 365

// MintAuthority reports whether the token's mint authority is still active.
type MintAuthority int

const (
	// MintRevoked means new supply can no longer be minted.
	MintRevoked MintAuthority = iota

	// MintActive means the deployer can still mint new supply.
	MintActive
)

var mintAuthorityNames = []string{"revoked", "active"}

// String returns "Revoked" or "Active".
func (m MintAuthority) String() string {
	if m < MintRevoked || m > MintActive {
		return "Unknown"
	}
	return displayName(mintAuthorityNames[m])
}

// Color returns green for a revoked authority and red for an active one.
func (m MintAuthority) Color() string {
	if m == MintRevoked {
		return ColorGreen
	}
	return ColorRed
}

// MarshalText implements encoding.TextMarshaler.
func (m MintAuthority) MarshalText() ([]byte, error) {
	if m < MintRevoked || m > MintActive {
		return nil, fmt.Errorf("%w: mint authority %d", ErrUnknownEnumValue, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MintAuthority) UnmarshalText(text []byte) error {
	for i, name := range mintAuthorityNames {
		if strings.EqualFold(string(text), name) {
			*m = MintAuthority(i)
			return nil
		}
	}
	return fmt.Errorf("%w: mint authority %q", ErrUnknownEnumValue, string(text))
}

// DeployerReputation is the reputation of the address that deployed the token.
type DeployerReputation int

const (
	// DeployerVerified marks a deployer with a known track record.
	DeployerVerified DeployerReputation = iota

	// DeployerUnknown marks a deployer without any track record.
	DeployerUnknown
)

var deployerReputationNames = []string{"verified", "unknown"}

// String returns "Verified" or "Unknown".
func (d DeployerReputation) String() string {
	if d < DeployerVerified || d > DeployerUnknown {
		return "Unknown"
	}
	return displayName(deployerReputationNames[d])
}

// Color returns green for verified deployers and amber otherwise.
func (d DeployerReputation) Color() string {
	if d == DeployerVerified {
		return ColorGreen
	}
	return ColorAmber
}

// MarshalText implements encoding.TextMarshaler.
func (d DeployerReputation) MarshalText() ([]byte, error) {
	if d < DeployerVerified || d > DeployerUnknown {
		return nil, fmt.Errorf("%w: deployer reputation %d", ErrUnknownEnumValue, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DeployerReputation) UnmarshalText(text []byte) error {
	for i, name := range deployerReputationNames {
		if strings.EqualFold(string(text), name) {
			*d = DeployerReputation(i)
			return nil
		}
	}
	return fmt.Errorf("%w: deployer reputation %q", ErrUnknownEnumValue, string(text))
}

// ScanRequest is the input of a scan. The address is free text; the only
// requirement is that it is not blank.
type ScanRequest struct {
	Address string `json:"address"`
}

// IsBlank reports whether the address is empty after trimming whitespace.
func (r ScanRequest) IsBlank() bool {
	return IsBlankAddress(r.Address)
}

// IsBlankAddress reports whether address is empty after trimming whitespace.
// No other format check (base58, length) is performed.
func IsBlankAddress(address string) bool {
	return strings.TrimSpace(address) == ""
}

// ScanResult holds the simulated risk metrics of one scan.
// All fields are independent random draws and are populated together.
type ScanResult struct {
	// Score is the overall risk score in [0, MaxScore).
	Score int `json:"score"`

	// Level is LevelForScore(Score).
	Level RiskLevel `json:"level"`

	// MintAuthority tells whether more supply can be minted.
	MintAuthority MintAuthority `json:"mintAuthority"`

	// HolderConcentration is the percentage held by the largest holders, in [0, 100).
	HolderConcentration int `json:"holderConcentration"`

	// LiquidityLocked tells whether the trading pool liquidity is locked.
	LiquidityLocked bool `json:"liquidityLocked"`

	// TokenAge is the token age in days, in [0, MaxTokenAgeDays).
	TokenAge int `json:"tokenAge"`

	// DeployerReputation is the reputation of the deploying address.
	DeployerReputation DeployerReputation `json:"deployerReputation"`
}

// LiquidityStatus returns "Locked" or "Unlocked".
func (r ScanResult) LiquidityStatus() string {
	if r.LiquidityLocked {
		return "Locked"
	}
	return "Unlocked"
}

// LiquidityColor returns green for locked liquidity and red otherwise.
func (r ScanResult) LiquidityColor() string {
	if r.LiquidityLocked {
		return ColorGreen
	}
	return ColorRed
}
