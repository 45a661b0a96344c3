// Package section groups performance bars into fixed-size sections, reduces
// each group to an ordered NOTE_ON/NOTE_OFF token sequence, and deduplicates
// identical musical content by canonical hash.
package section

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/tonefold/motive/internal/score"
)

// Tokenize partitions the bar set into contiguous groups of size bars,
// tokenizes each group, and drops later groups whose content hash has been
// seen before (first occurrence wins).
//
// A set flagged as an upstream error is passed through unchanged. An empty
// bar collection is an EMPTY_INPUT fault, never an empty success.
func Tokenize(set score.BarSet, size int) (Set, error) {
	if set.Error {
		return Set{Error: true, TenantID: set.TenantID, FileID: set.FileID}, nil
	}
	if len(set.Bars) == 0 {
		return Set{}, score.NewEmptyInput(set.TenantID, set.FileID, "bars")
	}
	if size <= 0 {
		size = DefaultSize
	}

	out := Set{TenantID: set.TenantID, FileID: set.FileID}
	seen := make(map[string]bool)

	for start := 0; start < len(set.Bars); start += size {
		end := start + size
		if end > len(set.Bars) {
			end = len(set.Bars)
		}
		group := set.Bars[start:end]
		out.TotalSections++

		sec, err := tokenizeGroup(group, size)
		if err != nil {
			return Set{}, fmt.Errorf("tokenize section %d: %w", out.TotalSections-1, err)
		}
		sec.Index = out.TotalSections - 1

		if seen[sec.Hash] {
			slog.Debug("duplicate section dropped",
				"file", set.FileID, "index", sec.Index, "hash", sec.Hash[:12])
			continue
		}
		seen[sec.Hash] = true
		out.Sections = append(out.Sections, sec)
	}

	out.UniqueSections = len(out.Sections)
	return out, nil
}

// tokenizeGroup builds the token sequence, metadata, and content hash for
// one bar group. The final short group keeps its true bar count in
// BarsCovered while GroupSize stays at the nominal size (zero padding).
func tokenizeGroup(group []score.Bar, size int) (Section, error) {
	var tokens []Token
	var offset float64
	covered := 0

	for _, bar := range group {
		if len(bar.Notes) > 0 {
			covered++
		}
		for _, n := range bar.Notes {
			tokens = append(tokens,
				Token{Type: NoteOn, Pitch: n.Pitch, Velocity: n.Velocity, Time: offset + n.Start},
				Token{Type: NoteOff, Pitch: n.Pitch, Velocity: 0, Time: offset + n.Start + n.Duration},
			)
		}
		offset += bar.EndSec - bar.StartSec
	}

	// Time order with pitch as tie-break; NOTE_OFF sorts before NOTE_ON at
	// the same instant so a repeated pitch releases before it re-attacks.
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Time != tokens[j].Time {
			return tokens[i].Time < tokens[j].Time
		}
		if tokens[i].Pitch != tokens[j].Pitch {
			return tokens[i].Pitch < tokens[j].Pitch
		}
		return tokens[i].Type < tokens[j].Type
	})

	hash, err := hashTokens(tokens)
	if err != nil {
		return Section{}, err
	}

	return Section{
		Tokens:      tokens,
		BarsCovered: covered,
		GroupSize:   size,
		Hash:        hash,
		Meta:        aggregate(group, tokens),
	}, nil
}

// hashTokens hashes the serialized token sequence only. Bar indexes and
// absolute positions are deliberately excluded so identical content at
// different positions hashes identically.
func hashTokens(tokens []Token) (string, error) {
	seq := make([]any, len(tokens))
	for i, tok := range tokens {
		seq[i] = map[string]any{
			"type":     string(tok.Type),
			"pitch":    tok.Pitch,
			"velocity": tok.Velocity,
			"time":     tok.Time,
		}
	}
	return score.HashCanonical(score.DomainSection, seq)
}

func aggregate(group []score.Bar, tokens []Token) Aggregate {
	var agg Aggregate
	var pitchSum, velSum float64
	minPitch, maxPitch := 128, -1

	for _, tok := range tokens {
		if tok.Type != NoteOn {
			continue
		}
		agg.NoteCount++
		pitchSum += float64(tok.Pitch)
		velSum += float64(tok.Velocity)
		if tok.Pitch < minPitch {
			minPitch = tok.Pitch
		}
		if tok.Pitch > maxPitch {
			maxPitch = tok.Pitch
		}
	}
	if agg.NoteCount > 0 {
		agg.AvgPitch = pitchSum / float64(agg.NoteCount)
		agg.AvgVelocity = velSum / float64(agg.NoteCount)
		agg.PitchRange = maxPitch - minPitch
	}

	var bpmSum float64
	for _, bar := range group {
		bpmSum += bar.BPM
		agg.Duration += bar.EndSec - bar.StartSec
	}
	if len(group) > 0 {
		agg.AvgBPM = bpmSum / float64(len(group))
	}
	return agg
}
