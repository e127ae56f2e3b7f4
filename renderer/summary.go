package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// MonthMarkdown renders one month's ledger activity as a spending review:
// total income, expenses broken down into fixed, variable and savings
// buckets, and a per-category detail table.
func MonthMarkdown(month household.Month, entries []household.Entry, accounts map[string]household.Account, presets household.Presets, base string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Review for %s", month))

	var income, fixed, variable, savings household.Money
	byCategory := make(map[string]household.Money)
	for _, e := range entries {
		if !month.Contains(e.When()) {
			continue
		}
		// foreign-tagged amounts stay segregated, as in the balance replay
		if c := e.Value().Currency(); c != "" && c != base {
			continue
		}
		if e.Kind() == household.KindIncome {
			income = income.Add(e.Value())
			continue
		}
		category, _ := e.Labels()
		byCategory[category] = byCategory[category].Add(e.Value())
		switch household.TypeOf(e, accounts, presets) {
		case household.CategoryFixed:
			fixed = fixed.Add(e.Value())
		case household.CategorySavings:
			savings = savings.Add(e.Value())
		default:
			variable = variable.Add(e.Value())
		}
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Bucket", "Amount"},
		Rows: [][]string{
			{"Income", income.String()},
			{"Fixed costs", fixed.String()},
			{"Variable spending", variable.String()},
			{"Savings", savings.String()},
			{md.Bold("Left over"), md.Bold(income.Sub(fixed).Sub(variable).Sub(savings).String())},
		},
	})

	if len(byCategory) > 0 {
		doc.H2("By Category")
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Amount"},
		}
		for _, c := range categories {
			table.Rows = append(table.Rows, []string{dash(c), byCategory[c].String()})
		}
		doc.Table(table)
	}

	return doc.String()
}
