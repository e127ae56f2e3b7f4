package household

import (
	"testing"
	"time"
)

func month(y int, m time.Month) Month { return NewMonth(y, m) }

func TestExpand_MonthlyClamp(t *testing.T) {
	// a template anchored on the 31st clamps into shorter months
	rent := Recurring{
		Title: "Rent", Amount: M(800, base), Category: "housing",
		Freq: Monthly, Start: day(2023, time.January, 31), From: "main",
	}

	testCases := []struct {
		name   string
		target Month
		want   Date
	}{
		{"regular February", month(2025, time.February), day(2025, time.February, 28)},
		{"leap February", month(2024, time.February), day(2024, time.February, 29)},
		{"30-day month", month(2025, time.April), day(2025, time.April, 30)},
		{"31-day month", month(2025, time.March), day(2025, time.March, 31)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Expand([]Recurring{rent}, tc.target, nil)
			if len(got) != 1 {
				t.Fatalf("Expand() returned %d entries, want 1", len(got))
			}
			if got[0].When() != tc.want {
				t.Errorf("occurrence on %s, want %s", got[0].When(), tc.want)
			}
		})
	}
}

func TestExpand_Bounds(t *testing.T) {
	testCases := []struct {
		name     string
		template Recurring
		target   Month
		want     int
	}{
		{
			name: "before the start date",
			template: Recurring{
				Title: "Gym", Amount: M(30, base), Freq: Monthly,
				Start: day(2025, time.June, 15), From: "main",
			},
			target: month(2025, time.May),
			want:   0,
		},
		{
			name: "after the end date",
			template: Recurring{
				Title: "Gym", Amount: M(30, base), Freq: Monthly,
				Start: day(2024, time.January, 15), End: day(2025, time.March, 31), From: "main",
			},
			target: month(2025, time.April),
			want:   0,
		},
		{
			name: "no start date",
			template: Recurring{
				Title: "Gym", Amount: M(30, base), Freq: Monthly, From: "main",
			},
			target: month(2025, time.April),
			want:   0,
		},
		{
			name: "non-positive amount",
			template: Recurring{
				Title: "Gym", Amount: M(0, base), Freq: Monthly,
				Start: day(2024, time.January, 15), From: "main",
			},
			target: month(2025, time.April),
			want:   0,
		},
		{
			name: "inside the bounds",
			template: Recurring{
				Title: "Gym", Amount: M(30, base), Freq: Monthly,
				Start: day(2024, time.January, 15), End: day(2025, time.June, 30), From: "main",
			},
			target: month(2025, time.April),
			want:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Expand([]Recurring{tc.template}, tc.target, nil)
			if len(got) != tc.want {
				t.Errorf("Expand() returned %d entries, want %d", len(got), tc.want)
			}
		})
	}
}

func TestExpand_Yearly(t *testing.T) {
	insurance := Recurring{
		Title: "Insurance", Amount: M(420, base), Category: "insurance",
		Freq: Yearly, Start: day(2023, time.September, 12), From: "main",
	}

	if got := Expand([]Recurring{insurance}, month(2025, time.September), nil); len(got) != 1 {
		t.Errorf("anchor month: Expand() returned %d entries, want 1", len(got))
	} else if want := day(2025, time.September, 12); got[0].When() != want {
		t.Errorf("occurrence on %s, want %s", got[0].When(), want)
	}
	if got := Expand([]Recurring{insurance}, month(2025, time.October), nil); len(got) != 0 {
		t.Errorf("other month: Expand() returned %d entries, want 0", len(got))
	}
}

func TestExpand_Weekly(t *testing.T) {
	pool := Recurring{
		Title: "Pool", Amount: M(15, base), Category: "sport",
		Freq: Weekly, Start: day(2025, time.June, 4), From: "main", // a Wednesday
	}

	got := Expand([]Recurring{pool}, month(2025, time.July), nil)
	want := []Date{
		day(2025, time.July, 2),
		day(2025, time.July, 9),
		day(2025, time.July, 16),
		day(2025, time.July, 23),
		day(2025, time.July, 30),
	}
	if len(got) != len(want) {
		t.Fatalf("Expand() returned %d entries, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.When() != want[i] {
			t.Errorf("occurrence %d on %s, want %s", i, e.When(), want[i])
		}
	}
}

func TestExpand_WeeklyEndDate(t *testing.T) {
	pool := Recurring{
		Title: "Pool", Amount: M(15, base), Category: "sport",
		Freq: Weekly, Start: day(2025, time.June, 4), End: day(2025, time.July, 10), From: "main",
	}

	got := Expand([]Recurring{pool}, month(2025, time.July), nil)
	if len(got) != 2 {
		t.Fatalf("Expand() returned %d entries, want 2", len(got))
	}
}

func TestExpand_Candidates(t *testing.T) {
	templates := []Recurring{
		{
			Title: "Rent", Amount: M(800, base), Category: "housing",
			Freq: Monthly, Start: day(2024, time.January, 1), From: "main",
		},
		{
			Title: "Savings plan", Amount: M(200, base), Category: "savings",
			Freq: Monthly, Start: day(2024, time.January, 2), From: "main", To: "pot",
		},
	}

	got := Expand(templates, month(2025, time.May), nil)
	if len(got) != 2 {
		t.Fatalf("Expand() returned %d entries, want 2", len(got))
	}

	expense, ok := got[0].(Expense)
	if !ok {
		t.Fatalf("candidate without destination is %T, want Expense", got[0])
	}
	if !expense.IsFixed() {
		t.Error("candidate expense is not tagged as fixed")
	}
	if expense.From != "main" {
		t.Errorf("expense From = %q, want main", expense.From)
	}

	transfer, ok := got[1].(Transfer)
	if !ok {
		t.Fatalf("candidate with destination is %T, want Transfer", got[1])
	}
	if transfer.From != "main" || transfer.To != "pot" {
		t.Errorf("transfer accounts = (%q, %q), want (main, pot)", transfer.From, transfer.To)
	}
}

func TestExpand_Dedup(t *testing.T) {
	rent := Recurring{
		Title: "Rent", Amount: M(800, base), Category: "housing",
		Freq: Monthly, Start: day(2024, time.January, 1), From: "main",
	}
	target := month(2025, time.May)

	first := Expand([]Recurring{rent}, target, nil)
	if len(first) != 1 {
		t.Fatalf("first expansion returned %d entries, want 1", len(first))
	}

	// applying the expansion and re-triggering it yields nothing new
	second := Expand([]Recurring{rent}, target, first)
	if len(second) != 0 {
		t.Errorf("second expansion returned %d entries, want 0", len(second))
	}
}

func TestExpand_DedupIgnoresOtherMonths(t *testing.T) {
	rent := Recurring{
		Title: "Rent", Amount: M(800, base), Category: "housing",
		Freq: Monthly, Start: day(2024, time.January, 1), From: "main",
	}

	// an April occurrence must not suppress the May one
	april := Expand([]Recurring{rent}, month(2025, time.April), nil)
	got := Expand([]Recurring{rent}, month(2025, time.May), april)
	if len(got) != 1 {
		t.Errorf("Expand() returned %d entries, want 1", len(got))
	}
}

func TestExpand_ZeroMonth(t *testing.T) {
	rent := Recurring{
		Title: "Rent", Amount: M(800, base), Category: "housing",
		Freq: Monthly, Start: day(2024, time.January, 1), From: "main",
	}
	if got := Expand([]Recurring{rent}, Month{}, nil); got != nil {
		t.Errorf("Expand() on zero month returned %d entries, want none", len(got))
	}
}
