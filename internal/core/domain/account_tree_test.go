package domain_test

import (
	"testing"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNextChildCode(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		existing []string
		want     string
	}{
		{name: "max plus one ignores gaps", parent: "1.2", existing: []string{"1.2.1", "1.2.3"}, want: "1.2.4"},
		{name: "no children", parent: "5", existing: nil, want: "5.1"},
		{name: "grandchildren count through their first segment", parent: "1", existing: []string{"1.1", "1.1.7", "1.4.2"}, want: "1.5"},
		{name: "similar prefixes are not children", parent: "1.2", existing: []string{"1.20", "1.21.1", "1.2.2"}, want: "1.2.3"},
		{name: "malformed segments are ignored", parent: "3", existing: []string{"3.a", "3.-1", "3.+9", "3.", "3.2"}, want: "3.3"},
		{name: "parent code itself is ignored", parent: "2", existing: []string{"2"}, want: "2.1"},
		{name: "top level", parent: "", existing: []string{"1", "2.1", "4.3.3"}, want: "5"},
		{name: "top level empty chart", parent: "", existing: nil, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NextChildCode(tt.parent, tt.existing))
		})
	}
}

func TestCompareCodes(t *testing.T) {
	assert.Equal(t, -1, domain.CompareCodes("1.2", "1.10"))
	assert.Equal(t, 1, domain.CompareCodes("2", "1.9"))
	assert.Equal(t, -1, domain.CompareCodes("1", "1.1"))
	assert.Equal(t, 0, domain.CompareCodes("3.1", "3.1"))
	assert.Equal(t, -1, domain.CompareCodes("1.a", "1.b"))
}

func TestParentCodeAndLevel(t *testing.T) {
	assert.Equal(t, "1.2", domain.ParentCode("1.2.3"))
	assert.Equal(t, "", domain.ParentCode("1"))
	assert.Equal(t, 3, domain.CodeLevel("1.2.3"))
	assert.Equal(t, 0, domain.CodeLevel(""))
}

// shape renders a forest as code -> child codes for diffing.
func shape(roots []*domain.AccountNode) map[string][]string {
	out := map[string][]string{}
	var rootCodes []string
	for _, r := range roots {
		rootCodes = append(rootCodes, r.Code)
	}
	out[""] = rootCodes
	domain.Walk(roots, func(n *domain.AccountNode) {
		var codes []string
		for _, c := range n.Children {
			codes = append(codes, c.Code)
		}
		out[n.Code] = codes
	})
	return out
}

func TestBuildTree(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "c", Code: "1.10", ParentAccountID: strPtr("a")},
		{AccountID: "a", Code: "1"},
		{AccountID: "b", Code: "1.2", ParentAccountID: strPtr("a")},
		{AccountID: "d", Code: "1.2.1", ParentAccountID: strPtr("b")},
		{AccountID: "e", Code: "2"},
	}

	roots := domain.BuildTree(accounts)

	want := map[string][]string{
		"":      {"1", "2"},
		"1":     {"1.2", "1.10"},
		"1.2":   {"1.2.1"},
		"1.2.1": nil,
		"1.10":  nil,
		"2":     nil,
	}
	if diff := cmp.Diff(want, shape(roots)); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTree_FallsBackToCodeKeys(t *testing.T) {
	accounts := []domain.Account{
		{Code: "1"},
		{Code: "1.1", ParentAccountID: strPtr("1")},
		{AccountID: "x", Code: "1.2", ParentAccountID: strPtr("1")},
	}

	roots := domain.BuildTree(accounts)

	want := map[string][]string{"": {"1"}, "1": {"1.1", "1.2"}, "1.1": nil, "1.2": nil}
	if diff := cmp.Diff(want, shape(roots)); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTree_OrphansBecomeRoots(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "a", Code: "1"},
		{AccountID: "b", Code: "9.1", ParentAccountID: strPtr("missing")},
		{AccountID: "c", Code: "3", ParentAccountID: strPtr("c")},
	}

	roots := domain.BuildTree(accounts)

	require.Len(t, roots, 3)
	assert.Equal(t, []string{"1", "3", "9.1"}, shape(roots)[""])
}

func TestBuildTree_BreaksCycles(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "a", Code: "1", ParentAccountID: strPtr("b")},
		{AccountID: "b", Code: "1.1", ParentAccountID: strPtr("a")},
	}

	roots := domain.BuildTree(accounts)

	count := 0
	domain.Walk(roots, func(*domain.AccountNode) { count++ })
	assert.Equal(t, 2, count, "every account must stay reachable")
	assert.Len(t, roots, 1)
}

func TestAggregateBalances(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "R", Code: "1"},
		{AccountID: "C1", Code: "1.1", ParentAccountID: strPtr("R")},
		{AccountID: "C2", Code: "1.2", ParentAccountID: strPtr("R")},
		{AccountID: "G1", Code: "1.1.1", ParentAccountID: strPtr("C1")},
		{AccountID: "G2", Code: "1.1.2", ParentAccountID: strPtr("C1")},
	}
	roots := domain.BuildTree(accounts)
	domain.ApplyTotals(roots, map[string]domain.AccountTotals{
		"C1": domain.NewAccountTotals(decimal.NewFromInt(100), decimal.Zero),
		"C2": domain.NewAccountTotals(decimal.Zero, decimal.NewFromInt(40)),
		"G1": domain.NewAccountTotals(decimal.NewFromInt(30), decimal.Zero),
		"G2": domain.NewAccountTotals(decimal.NewFromInt(25), decimal.NewFromInt(5)),
	})

	domain.AggregateBalances(roots)

	balances := map[string]string{}
	debits := map[string]string{}
	domain.Walk(roots, func(n *domain.AccountNode) {
		balances[n.AccountID] = n.Balance.String()
		debits[n.AccountID] = n.TotalDebit.String()
	})
	assert.Equal(t, map[string]string{"R": "10", "C1": "50", "C2": "-40", "G1": "30", "G2": "20"}, balances)
	assert.Equal(t, "55", debits["C1"], "direct debit of 100 on C1 is replaced by its children")
	assert.Equal(t, "55", debits["R"])
}

func TestAggregateBalances_LeafWithoutTotals(t *testing.T) {
	roots := domain.BuildTree([]domain.Account{
		{AccountID: "R", Code: "1"},
		{AccountID: "L", Code: "1.1", ParentAccountID: strPtr("R")},
	})
	domain.ApplyTotals(roots, nil)

	domain.AggregateBalances(roots)

	assert.True(t, roots[0].Balance.IsZero())
}
