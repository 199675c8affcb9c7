// Package instrument holds the fixed FACT-G and FACT-E questionnaire
// definitions: item names, reverse-scoring flags, subscale membership, and
// composite totals with their completeness thresholds. The schemas come from
// the FACT scoring manual and are case-sensitive; they are built from
// enumerated constants and never mutated at run time.
package instrument

import "fmt"

// IDColumn names the respondent identifier column.
const IDColumn = "id"

// MaxResponse is the top of the item response range; reverse-scored items map
// raw r to MaxResponse - r.
const MaxResponse = 4

// Item is a single questionnaire item. Reverse marks items whose raw value
// denotes worse status the higher it is.
type Item struct {
	Name    string
	Reverse bool
}

// ScoreColumn names the derived per-item column.
func (it Item) ScoreColumn() string { return it.Name + "_score" }

// Subscale is an ordered, fixed set of items scored together. A respondent's
// subscale score is valid only if at least half the items were answered
// (true division: a 7-item subscale needs 4 answers).
type Subscale struct {
	Name  string
	Items []Item
}

// ScoreColumn names the derived subscale score column.
func (s Subscale) ScoreColumn() string { return s.Name + "_subscale_score" }

// ItemNames returns the raw item column names in order.
func (s Subscale) ItemNames() []string {
	out := make([]string, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.Name
	}
	return out
}

// ScoreColumns returns the derived per-item column names in order.
func (s Subscale) ScoreColumns() []string {
	out := make([]string, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.ScoreColumn()
	}
	return out
}

// Composite is a derived total. Terms are already-derived columns that are
// summed; all of them must be present. UnionItems are the per-item score
// columns whose answered count is compared against MinAnswered, a precomputed
// ceil(0.8 * len(UnionItems)) fixed by the scoring manual.
type Composite struct {
	Name        string
	Column      string
	Terms       []string
	UnionItems  []string
	MinAnswered int
}

// Instrument is a complete questionnaire: its subscales in scoring order and
// its composites in an order where every Term is produced before it is
// consumed (FACT-E's total reads the FACT-G total).
type Instrument struct {
	Name       string
	Subscales  []Subscale
	Composites []Composite
}

// ItemColumns returns every raw item column the instrument reads, in order.
func (inst Instrument) ItemColumns() []string {
	var out []string
	for _, s := range inst.Subscales {
		out = append(out, s.ItemNames()...)
	}
	return out
}

// SelectColumns returns the identifier column followed by every item column;
// this is the projection applied before scoring.
func (inst Instrument) SelectColumns() []string {
	return append([]string{IDColumn}, inst.ItemColumns()...)
}

// ScoreColumns returns every derived column the instrument produces, in
// output order: each subscale's per-item scores followed by its subscale
// score, then the composites.
func (inst Instrument) ScoreColumns() []string {
	var out []string
	for _, s := range inst.Subscales {
		out = append(out, s.ScoreColumns()...)
		out = append(out, s.ScoreColumn())
	}
	for _, c := range inst.Composites {
		out = append(out, c.Column)
	}
	return out
}

// SummaryColumns returns the columns reported in the summary statistics:
// subscale scores and composite totals.
func (inst Instrument) SummaryColumns() []string {
	var out []string
	for _, s := range inst.Subscales {
		out = append(out, s.ScoreColumn())
	}
	for _, c := range inst.Composites {
		out = append(out, c.Column)
	}
	return out
}

func numbered(prefix string, from, to int, reverse func(int) bool) []Item {
	var out []Item
	for i := from; i <= to; i++ {
		out = append(out, Item{Name: fmt.Sprintf("%s%d", prefix, i), Reverse: reverse(i)})
	}
	return out
}

func all(int) bool  { return true }
func none(int) bool { return false }

// pwb, swb, ewb, fwb are the four FACT-G well-being subscales. All PWB items
// are reverse-scored; EWB is reverse-scored except ge2.
func pwb() Subscale { return Subscale{Name: "pwb", Items: numbered("gp", 1, 7, all)} }
func swb() Subscale { return Subscale{Name: "swb", Items: numbered("gs", 1, 7, none)} }
func ewb() Subscale {
	return Subscale{Name: "ewb", Items: numbered("ge", 1, 6, func(i int) bool { return i != 2 })}
}
func fwb() Subscale { return Subscale{Name: "fwb", Items: numbered("gf", 1, 7, none)} }

// ecs is the Esophageal Cancer Subscale, 17 items with a fixed reverse set.
func ecs() Subscale {
	rev := map[string]bool{
		"a_e1": true, "a_e2": true, "a_e3": true, "a_e4": true, "a_e5": true,
		"a_e7": true, "a_act11": true, "a_c2": true, "a_hn2": true, "a_hn3": true,
	}
	names := []string{
		"a_hn1", "a_hn2", "a_hn3", "a_hn4", "a_hn5", "a_hn7", "a_hn10",
		"a_e1", "a_e2", "a_e3", "a_e4", "a_e5", "a_e6", "a_e7",
		"a_c6", "a_c2", "a_act11",
	}
	items := make([]Item, len(names))
	for i, n := range names {
		items[i] = Item{Name: n, Reverse: rev[n]}
	}
	return Subscale{Name: "ecs", Items: items}
}

func scoreColumns(subs ...Subscale) []string {
	var out []string
	for _, s := range subs {
		out = append(out, s.ScoreColumns()...)
	}
	return out
}

func subscaleColumns(subs ...Subscale) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.ScoreColumn()
	}
	return out
}

// FACTG returns the FACT-G instrument: PWB+SWB+EWB+FWB and the fact_g_total
// composite gated at 22 of its 27 items (ceil of 80%).
func FACTG() Instrument {
	p, s, e, f := pwb(), swb(), ewb(), fwb()
	return Instrument{
		Name:      "FACT-G",
		Subscales: []Subscale{p, s, e, f},
		Composites: []Composite{{
			Name:        "FACT-G total",
			Column:      "fact_g_total",
			Terms:       subscaleColumns(p, s, e, f),
			UnionItems:  scoreColumns(p, s, e, f),
			MinAnswered: 22,
		}},
	}
}

// FACTE returns the FACT-E instrument: FACT-G plus the ECS subscale, the
// fact_e_total composite (FACT-G total + ECS, gated at 36 of 44 items), and
// the Trial Outcome Index (PWB + FWB + ECS, gated at 25 of 31 items).
func FACTE() Instrument {
	p, s, e, f, c := pwb(), swb(), ewb(), fwb(), ecs()
	factG := Composite{
		Name:        "FACT-G total",
		Column:      "fact_g_total",
		Terms:       subscaleColumns(p, s, e, f),
		UnionItems:  scoreColumns(p, s, e, f),
		MinAnswered: 22,
	}
	factE := Composite{
		Name:        "FACT-E total",
		Column:      "fact_e_total",
		Terms:       []string{factG.Column, c.ScoreColumn()},
		UnionItems:  scoreColumns(p, s, e, f, c),
		MinAnswered: 36,
	}
	toi := Composite{
		Name:        "Trial Outcome Index",
		Column:      "toi",
		Terms:       subscaleColumns(p, f, c),
		UnionItems:  scoreColumns(p, f, c),
		MinAnswered: 25,
	}
	return Instrument{
		Name:       "FACT-E",
		Subscales:  []Subscale{p, s, e, f, c},
		Composites: []Composite{factG, factE, toi},
	}
}
