// Package scoring computes FACT questionnaire scores over a table of raw item
// responses: reverse-coded per-item scores, prorated subscale scores gated on
// a 50% answered threshold, and composite totals gated on constituent
// validity plus an 80% item-union threshold. Every function is a pure
// transform per respondent row; a score that fails its gate is an absent cell
// (NaN internally, empty in CSV), never zero and never an error.
package scoring

import (
	"math"

	"github.com/coolbeans/factscore/pkg/instrument"
	"github.com/coolbeans/factscore/pkg/table"
)

// Reverse maps a raw response to its reverse-scored value (4 - raw). Missing
// stays missing. Callers apply it exactly once per item per scoring pass.
func Reverse(raw float64) float64 {
	if math.IsNaN(raw) {
		return raw
	}
	return instrument.MaxResponse - raw
}

// ScoreSubscale adds the subscale's per-item score columns and its
// _subscale_score column to t. Per respondent: each answered item is
// reverse-transformed where the instrument says so; with answered of total
// items non-missing, the score is sum * total / answered, valid only when
// answered >= total/2 by true division (a 7-item subscale needs 4 answers, a
// 6-item one needs 3). Zero answered items is always absent.
func ScoreSubscale(t *table.Table, sub instrument.Subscale) error {
	n := t.Len()
	total := len(sub.Items)
	transformed := make([][]float64, len(sub.Items))
	for i, it := range sub.Items {
		col := make([]float64, n)
		for r := 0; r < n; r++ {
			v, ok := t.Float(r, it.Name)
			if !ok {
				col[r] = math.NaN()
				continue
			}
			if it.Reverse {
				v = Reverse(v)
			}
			col[r] = v
		}
		transformed[i] = col
	}

	scores := make([]float64, n)
	for r := 0; r < n; r++ {
		sum, answered := 0.0, 0
		for i := range transformed {
			v := transformed[i][r]
			if math.IsNaN(v) {
				continue
			}
			sum += v
			answered++
		}
		if answered == 0 || float64(answered) < float64(total)/2 {
			scores[r] = math.NaN()
			continue
		}
		scores[r] = sum * float64(total) / float64(answered)
	}

	for i, it := range sub.Items {
		if err := t.AddFloats(it.ScoreColumn(), transformed[i]); err != nil {
			return err
		}
	}
	return t.AddFloats(sub.ScoreColumn(), scores)
}

// ScoreComposite adds the composite's total column to t. Per respondent the
// total is the sum of the composite's terms, valid only when every term is
// present and the answered count across the composite's item union reaches
// its fixed minimum. Item columns absent from the table count as unanswered.
func ScoreComposite(t *table.Table, comp instrument.Composite) error {
	n := t.Len()
	totals := make([]float64, n)
	for r := 0; r < n; r++ {
		answered := 0
		for _, col := range comp.UnionItems {
			if _, ok := t.Float(r, col); ok {
				answered++
			}
		}
		sum, valid := 0.0, answered >= comp.MinAnswered
		for _, term := range comp.Terms {
			v, ok := t.Float(r, term)
			if !ok {
				valid = false
				break
			}
			sum += v
		}
		if !valid {
			totals[r] = math.NaN()
			continue
		}
		totals[r] = sum
	}
	return t.AddFloats(comp.Column, totals)
}

// Score runs the full pipeline for one instrument: project the table down to
// the identifier and item columns, score every subscale, then every
// composite. The input table is not modified; absent item columns are
// tolerated and scored as fully missing.
func Score(t *table.Table, inst instrument.Instrument) (*table.Table, error) {
	out := t.Select(inst.SelectColumns())
	for _, sub := range inst.Subscales {
		if err := ScoreSubscale(out, sub); err != nil {
			return nil, err
		}
	}
	for _, comp := range inst.Composites {
		if err := ScoreComposite(out, comp); err != nil {
			return nil, err
		}
	}
	return out, nil
}
