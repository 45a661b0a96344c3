package motif

// ComputeTrainingStats summarizes label coverage over a motif collection.
// UNLABELED motifs count toward the distribution but not toward
// LabeledCount; training is ready as soon as a single labeled motif exists.
// Pure read, no side effects.
func ComputeTrainingStats(motifs []Motif) TrainingMetadata {
	stats := TrainingMetadata{
		TotalCount:        len(motifs),
		LabelDistribution: make(map[string]int),
	}
	for _, m := range motifs {
		label := m.Label
		if label == "" {
			label = Unlabeled
		}
		stats.LabelDistribution[label]++
		if label != Unlabeled {
			stats.LabeledCount++
		}
	}
	if stats.TotalCount > 0 {
		stats.CoveragePercent = float64(stats.LabeledCount) / float64(stats.TotalCount) * 100
	}
	stats.TrainingReady = stats.LabeledCount > 0
	return stats
}
