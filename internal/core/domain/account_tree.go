package domain

import (
	"sort"
	"strconv"
	"strings"
)

const codeSeparator = "."

// NextChildCode returns the code for a new child of parentCode given the codes that
// already exist. The first segment after the parent prefix is read from every code
// under the parent; the result is the highest well-formed sequence plus one. Gaps are
// not reused and malformed segments count as zero. An empty parentCode yields the
// next top-level code.
func NextChildCode(parentCode string, existingCodes []string) string {
	prefix := ""
	if parentCode != "" {
		prefix = parentCode + codeSeparator
	}

	maxSeq := 0
	for _, code := range existingCodes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		seg, _, _ := strings.Cut(strings.TrimPrefix(code, prefix), codeSeparator)
		if n, ok := parseSegment(seg); ok && n > maxSeq {
			maxSeq = n
		}
	}
	return prefix + strconv.Itoa(maxSeq+1)
}

// ParentCode returns the code one level above code, or "" for a top-level code.
func ParentCode(code string) string {
	i := strings.LastIndex(code, codeSeparator)
	if i < 0 {
		return ""
	}
	return code[:i]
}

// CodeLevel returns the depth encoded in a dotted code ("1" is 1, "1.2" is 2).
func CodeLevel(code string) int {
	if code == "" {
		return 0
	}
	return strings.Count(code, codeSeparator) + 1
}

// CompareCodes orders dotted codes segment by segment, numerically where both
// segments are numbers, so "1.2" sorts before "1.10".
func CompareCodes(a, b string) int {
	as := strings.Split(a, codeSeparator)
	bs := strings.Split(b, codeSeparator)
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aok := parseSegment(as[i])
		bn, bok := parseSegment(bs[i])
		switch {
		case aok && bok && an != bn:
			if an < bn {
				return -1
			}
			return 1
		case !(aok && bok) && as[i] != bs[i]:
			return strings.Compare(as[i], bs[i])
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

func parseSegment(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CanonicalKey is the key an account is indexed by in the tree: its id, or its code
// for rows that were loaded without an id.
func CanonicalKey(a Account) string {
	if a.AccountID != "" {
		return a.AccountID
	}
	return a.Code
}

// BuildTree arranges accounts into a forest. A parent reference is resolved against
// canonical keys first and account codes second. Accounts whose parent cannot be
// resolved become roots, as does one member of any parent cycle. Siblings are
// ordered by CompareCodes.
func BuildTree(accounts []Account) []*AccountNode {
	nodes := make([]*AccountNode, len(accounts))
	byKey := make(map[string]*AccountNode, len(accounts))
	byCode := make(map[string]*AccountNode, len(accounts))
	for i := range accounts {
		n := &AccountNode{Account: accounts[i]}
		nodes[i] = n
		if _, dup := byKey[CanonicalKey(n.Account)]; !dup {
			byKey[CanonicalKey(n.Account)] = n
		}
		if n.Code != "" {
			if _, dup := byCode[n.Code]; !dup {
				byCode[n.Code] = n
			}
		}
	}

	parents := make(map[*AccountNode]*AccountNode, len(nodes))
	for _, n := range nodes {
		if n.ParentAccountID == nil || *n.ParentAccountID == "" {
			continue
		}
		ref := *n.ParentAccountID
		if p, ok := byKey[ref]; ok && p != n {
			parents[n] = p
		} else if p, ok := byCode[ref]; ok && p != n {
			parents[n] = p
		}
	}

	for _, n := range nodes {
		seen := map[*AccountNode]bool{n: true}
		for cur := n; parents[cur] != nil; cur = parents[cur] {
			if seen[parents[cur]] {
				delete(parents, cur)
				break
			}
			seen[parents[cur]] = true
		}
	}

	var roots []*AccountNode
	for _, n := range nodes {
		if p := parents[n]; p != nil {
			p.Children = append(p.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	sortNodes(roots)
	return roots
}

func sortNodes(nodes []*AccountNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return CompareCodes(nodes[i].Code, nodes[j].Code) < 0
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

// Walk visits every node depth first, parents before children.
func Walk(roots []*AccountNode, fn func(*AccountNode)) {
	for _, n := range roots {
		fn(n)
		Walk(n.Children, fn)
	}
}

// ApplyTotals sets each node's own totals from the per-account map. Accounts missing
// from the map get zero totals.
func ApplyTotals(roots []*AccountNode, totals map[string]AccountTotals) {
	Walk(roots, func(n *AccountNode) {
		n.AccountTotals = totals[n.AccountID]
	})
}

// AggregateBalances rolls totals up the tree in post-order. Leaves keep their own
// figures; every internal node is overwritten with the sum of its children, so direct
// postings to a parent do not survive aggregation.
func AggregateBalances(roots []*AccountNode) {
	for _, n := range roots {
		aggregate(n)
	}
}

func aggregate(n *AccountNode) AccountTotals {
	if n.IsLeaf() {
		return n.AccountTotals
	}
	var sum AccountTotals
	for _, c := range n.Children {
		sum = sum.Add(aggregate(c))
	}
	n.AccountTotals = sum
	return sum
}
