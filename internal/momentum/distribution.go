package momentum

// Distribution summarizes a batch of classification results. Variance is
// true iff more than one distinct label appears across the batch.
type Distribution struct {
	Counts    map[Label]int `json:"counts"`
	Dominant  Label         `json:"dominant"`
	Variance  bool          `json:"momentum_variance"`
	MeanScore float64       `json:"mean_score"`
	MinScore  float64       `json:"min_score"`
	MaxScore  float64       `json:"max_score"`
}

// labelOrder fixes the tie-break for the dominant label so the helper stays
// deterministic over map iteration.
var labelOrder = []Label{Positive, Neutral, Negative}

// Analyze computes label counts, the dominant label, and score statistics
// over a batch of results. An empty batch yields a zero Distribution.
func Analyze(results []Result) Distribution {
	dist := Distribution{Counts: make(map[Label]int)}
	if len(results) == 0 {
		return dist
	}

	dist.MinScore = results[0].Score
	dist.MaxScore = results[0].Score
	var sum float64
	for _, r := range results {
		dist.Counts[r.Label]++
		sum += r.Score
		if r.Score < dist.MinScore {
			dist.MinScore = r.Score
		}
		if r.Score > dist.MaxScore {
			dist.MaxScore = r.Score
		}
	}
	dist.MeanScore = sum / float64(len(results))

	best := -1
	for _, label := range labelOrder {
		if n := dist.Counts[label]; n > best {
			best = n
			dist.Dominant = label
		}
	}
	dist.Variance = len(dist.Counts) > 1
	return dist
}
