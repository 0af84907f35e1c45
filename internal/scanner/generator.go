package scanner

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hacksolana/hks/internal/model"
)

// Probabilities used by the generator.
const (
	// mintRevokedProbability is the chance that mint authority is revoked.
	mintRevokedProbability = 0.5

	// liquidityLockedProbability is the chance that liquidity is locked.
	liquidityLockedProbability = 0.5

	// deployerVerifiedProbability is the chance that the deployer is verified.
	deployerVerifiedProbability = 0.7
)

// Generator draws simulated scan results.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by src.
// If src is nil, a time-seeded PCG source is used.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano()) //nolint:gosec // seed only
		src = rand.NewPCG(now, now>>1|1)
	}
	return &Generator{rng: rand.New(src)} //nolint:gosec // results are cosmetic
}

// NewSeededGenerator creates a Generator with a fixed seed for reproducible output.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate draws a complete ScanResult. Every field is an independent draw
// and the result is never derived from any input.
func (g *Generator) Generate() model.ScanResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	score := g.rng.IntN(model.MaxScore)

	mint := model.MintActive
	if g.rng.Float64() < mintRevokedProbability {
		mint = model.MintRevoked
	}

	holders := g.rng.IntN(100)
	locked := g.rng.Float64() < liquidityLockedProbability
	age := g.rng.IntN(model.MaxTokenAgeDays)

	deployer := model.DeployerUnknown
	if g.rng.Float64() < deployerVerifiedProbability {
		deployer = model.DeployerVerified
	}

	return model.ScanResult{
		Score:               score,
		Level:               model.LevelForScore(score),
		MintAuthority:       mint,
		HolderConcentration: holders,
		LiquidityLocked:     locked,
		TokenAge:            age,
		DeployerReputation:  deployer,
	}
}
