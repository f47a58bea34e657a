package career

import "strings"

type rule struct {
	category CategoryID
	keywords []string
}

// Order matters: the first rule with a matching keyword wins.
var rules = []rule{
	{category: CategoryDataAnalytics, keywords: []string{"python", "sql", "data", "pandas", "numpy"}},
	{category: CategoryEnterpriseERP, keywords: []string{"c#", "erp", "erpnext", "enterprise"}},
	{category: CategoryFullStackWeb, keywords: []string{"react", "node", "javascript", "express"}},
	{category: CategoryFrontendWeb, keywords: []string{"html", "css", "frontend", "ui"}},
	{category: CategoryEnterprise, keywords: []string{"java", "spring", "backend"}},
	{category: CategoryMobile, keywords: []string{"mobile", "android", "ios", "flutter", "react native"}},
}

// DefaultCategory is returned when no rule matches.
const DefaultCategory = CategoryFullStackWeb

type Match struct {
	Category CategoryID
	Keyword  string
	Fallback bool
}

// MatchSkills reports which rule, and which of its keywords, selected the category.
func MatchSkills(skills string) Match {
	lower := strings.ToLower(skills)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return Match{Category: r.category, Keyword: kw}
			}
		}
	}
	return Match{Category: DefaultCategory, Fallback: true}
}

func Classify(skills string) CategoryID {
	return MatchSkills(skills).Category
}
