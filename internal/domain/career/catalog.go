package career

import "fmt"

type CategoryID string

const (
	CategoryDataAnalytics CategoryID = "python_sql"
	CategoryEnterpriseERP CategoryID = "csharp_erp"
	CategoryFullStackWeb  CategoryID = "react_nodejs"
	CategoryFrontendWeb   CategoryID = "html_css_js"
	CategoryEnterprise    CategoryID = "java_spring"
	CategoryMobile        CategoryID = "mobile_dev"
)

// CareerRecord describes one career path. Records are never mutated after init.
type CareerRecord struct {
	ID          CategoryID
	Title       string
	Description string
	NextSteps   []string
	SalaryRange string
	JobGrowth   string
}

var catalog = []CareerRecord{
	{
		ID:          CategoryDataAnalytics,
		Title:       "Data Analyst / Data Scientist",
		Description: "Perfect for analyzing business data and creating insights",
		NextSteps: []string{
			"Learn pandas and numpy for data manipulation",
			"Master data visualization with matplotlib/seaborn",
			"Study statistics and machine learning basics",
			"Practice SQL queries on real datasets",
			"Build portfolio projects with real data",
		},
		SalaryRange: "$60,000 - $120,000",
		JobGrowth:   "High demand (22% growth expected)",
	},
	{
		ID:          CategoryEnterpriseERP,
		Title:       "Backend ERP Developer",
		Description: "Specialize in enterprise resource planning systems",
		NextSteps: []string{
			"Master ASP.NET Core and Web APIs",
			"Learn database design and optimization",
			"Understand ERP modules (Finance, HR, Supply Chain)",
			"Practice with ERPNext customization",
			"Get familiar with cloud deployment (Azure/AWS)",
		},
		SalaryRange: "$70,000 - $130,000",
		JobGrowth:   "Steady demand in enterprise sector",
	},
	{
		ID:          CategoryFullStackWeb,
		Title:       "Full Stack Web Developer",
		Description: "Build complete web applications from front to back",
		NextSteps: []string{
			"Master React hooks and state management",
			"Learn Express.js and REST API development",
			"Practice with MongoDB or PostgreSQL",
			"Understand authentication and security",
			"Deploy projects to Heroku/Netlify",
		},
		SalaryRange: "$65,000 - $125,000",
		JobGrowth:   "Very high demand across all industries",
	},
	{
		ID:          CategoryFrontendWeb,
		Title:       "Frontend Web Developer",
		Description: "Create beautiful and interactive user interfaces",
		NextSteps: []string{
			"Master modern CSS (Grid, Flexbox, Animations)",
			"Learn a frontend framework (React/Vue/Angular)",
			"Practice responsive design principles",
			"Understand browser developer tools",
			"Build portfolio with diverse projects",
		},
		SalaryRange: "$50,000 - $100,000",
		JobGrowth:   "High demand for mobile-first designs",
	},
	{
		ID:          CategoryEnterprise,
		Title:       "Enterprise Java Developer",
		Description: "Build robust enterprise applications",
		NextSteps: []string{
			"Master Spring Boot and Spring Security",
			"Learn microservices architecture",
			"Practice with Maven/Gradle build tools",
			"Understand unit testing with JUnit",
			"Study design patterns and clean code",
		},
		SalaryRange: "$75,000 - $140,000",
		JobGrowth:   "Consistent demand in large enterprises",
	},
	{
		ID:          CategoryMobile,
		Title:       "Mobile App Developer",
		Description: "Create apps for iOS and Android platforms",
		NextSteps: []string{
			"Choose: React Native, Flutter, or native development",
			"Learn mobile UI/UX design principles",
			"Practice with app store deployment",
			"Understand mobile-specific APIs and features",
			"Build 2-3 complete apps for portfolio",
		},
		SalaryRange: "$70,000 - $130,000",
		JobGrowth:   "Growing with mobile-first world",
	},
}

var catalogIndex = func() map[CategoryID]int {
	idx := make(map[CategoryID]int, len(catalog))
	for i, r := range catalog {
		idx[r.ID] = i
	}
	return idx
}()

// Lookup returns the record for id. Ids come from the closed CategoryID set, so an
// unknown id is a programming error and panics.
func Lookup(id CategoryID) CareerRecord {
	i, ok := catalogIndex[id]
	if !ok {
		panic(fmt.Sprintf("career: unknown category %q", id))
	}
	return catalog[i].clone()
}

// All returns every record in definition order.
func All() []CareerRecord {
	out := make([]CareerRecord, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, r.clone())
	}
	return out
}

func (id CategoryID) Valid() bool {
	_, ok := catalogIndex[id]
	return ok
}

func (r CareerRecord) clone() CareerRecord {
	steps := make([]string, len(r.NextSteps))
	copy(steps, r.NextSteps)
	r.NextSteps = steps
	return r
}
