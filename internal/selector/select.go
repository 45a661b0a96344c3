// Package selector draws motifs matching a rule-decided label from the
// catalog, deterministically per tenant, degrading gracefully when the
// catalog is thin.
package selector

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/tonefold/motive/internal/motif"
	"github.com/tonefold/motive/internal/rules"
	"github.com/tonefold/motive/internal/score"
)

// FallbackIDPrefix tags synthetic motifs emitted under degraded selection so
// callers can detect them.
const FallbackIDPrefix = "fallback-"

// Selection is the selector output. Degraded is true whenever any synthetic
// entry was emitted.
type Selection struct {
	Label    string        `json:"label"`
	TenantID string        `json:"tenant_id"`
	Motifs   []motif.Motif `json:"motifs"`
	Degraded bool          `json:"degraded"`
}

// Select decides the target label from the metrics vector and draws up to n
// motifs carrying it. The draw order is a pure function of (tenant, label,
// catalog state): the shuffle is seeded from a hash of tenant and label, so
// repeated calls reproduce exactly while different tenants usually diverge.
//
// When the primary pool runs short the selection extends from the fallback
// pool (unlabeled motifs first, then differently-labeled ones), and finally
// pads with synthetic fallback entries so the caller always receives n
// motifs, never a silent short count.
func Select(metrics map[string]float64, mode, tenantID string, n int, cat *motif.Catalog, set *rules.Set) (Selection, error) {
	label, err := set.Decide(metrics, mode)
	if err != nil {
		return Selection{}, err
	}
	sel := Selection{Label: label, TenantID: tenantID}
	if n <= 0 {
		return sel, nil
	}

	rng := seededRNG(tenantID, label)

	var primary, unlabeled, other []motif.Motif
	if cat != nil {
		for _, m := range cat.Motifs {
			switch {
			case m.Label == label:
				primary = append(primary, m)
			case !m.IsLabeled:
				unlabeled = append(unlabeled, m)
			default:
				other = append(other, m)
			}
		}
	}
	shuffle(rng, primary)
	shuffle(rng, unlabeled)
	shuffle(rng, other)

	sel.Motifs = take(n, primary, unlabeled, other)
	for i := len(sel.Motifs); i < n; i++ {
		sel.Motifs = append(sel.Motifs, syntheticMotif(label, i))
		sel.Degraded = true
	}
	if sel.Degraded {
		slog.Warn("degraded selection: catalog could not serve request",
			"tenant", tenantID, "label", label, "requested", n,
			"catalog_size", len(primary)+len(unlabeled)+len(other))
	}
	return sel, nil
}

// seededRNG builds a pure pseudorandom stream from a domain-separated hash
// of tenant and label. No process-wide random state is touched, so
// concurrent callers never interfere and runs are reproducible across
// processes.
func seededRNG(tenantID, label string) *rand.Rand {
	digest := score.HashWithDomain(score.DomainSeed, []byte(tenantID+"\x00"+label))
	raw, err := hex.DecodeString(digest[:32])
	if err != nil {
		// digest is our own hex output
		panic(err)
	}
	s1 := binary.BigEndian.Uint64(raw[:8])
	s2 := binary.BigEndian.Uint64(raw[8:16])
	return rand.New(rand.NewPCG(s1, s2))
}

func shuffle(rng *rand.Rand, pool []motif.Motif) {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

func take(n int, pools ...[]motif.Motif) []motif.Motif {
	var out []motif.Motif
	for _, pool := range pools {
		for _, m := range pool {
			if len(out) == n {
				return out
			}
			out = append(out, m)
		}
	}
	return out
}

// syntheticMotif is a recognizable placeholder for degraded-mode operation.
// It carries the decided label so downstream consumers still see a fully
// labeled list.
func syntheticMotif(label string, i int) motif.Motif {
	return motif.Motif{
		ID:    fmt.Sprintf("%s%s-%d", FallbackIDPrefix, strings.ToLower(label), i),
		Label: label,
		Notes: nil,
	}
}
