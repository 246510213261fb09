package config

import "sort"

// Rule routes a set of extensions to a destination folder.
type Rule struct {
	Folder     string
	Extensions []string
	Priority   int

	set map[string]struct{}
}

// Matches reports whether ext (without a leading dot) belongs to the rule.
func (r Rule) Matches(ext string) bool {
	_, ok := r.set[ext]
	return ok
}

// RuleSet is an ordered list of rules. Order is ascending Priority, then Folder
// in byte order, so first-match behaviour does not depend on map iteration.
type RuleSet []Rule

// NewRuleSet builds the ordered rule list from the decoded rules table.
func NewRuleSet(specs map[string]RuleSpec) RuleSet {
	rules := make(RuleSet, 0, len(specs))
	for folder, spec := range specs {
		exts := make([]string, len(spec.Extensions))
		copy(exts, spec.Extensions)
		set := make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			set[ext] = struct{}{}
		}
		rules = append(rules, Rule{
			Folder:     folder,
			Extensions: exts,
			Priority:   spec.Priority,
			set:        set,
		})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].Folder < rules[j].Folder
	})
	return rules
}

// Match returns the first rule containing ext.
func (rs RuleSet) Match(ext string) (Rule, bool) {
	if ext == "" {
		return Rule{}, false
	}
	for _, rule := range rs {
		if rule.Matches(ext) {
			return rule, true
		}
	}
	return Rule{}, false
}
