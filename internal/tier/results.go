package tier

import "slices"

// Result is the fixed record returned for a classification. Callers display
// it verbatim; Recommendations is an ordered growth path.
type Result struct {
	Tier            int      `json:"tier"`
	TierName        string   `json:"tierName"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

func (r Result) clone() Result {
	r.Recommendations = slices.Clone(r.Recommendations)
	return r
}

// tierResults is indexed by tier number.
var tierResults = [...]Result{
	0: {
		Tier:        0,
		TierName:    "Beginner",
		Description: "You have foundational knowledge in HTML, CSS, JavaScript, and basic React/Next.js. You are ready to start building CRUD applications with databases!",
		Recommendations: []string{
			"Start building simple CRUD applications",
			"Learn database basics (SQL or NoSQL)",
			"Practice with Next.js tutorials",
			"Build a todo app with database integration",
			"Learn about REST APIs",
		},
	},
	1: {
		Tier:        1,
		TierName:    "CRUD Developer",
		Description: "You can build CRUD applications with databases using Next.js or React! You have a good understanding of data persistence and basic API interactions.",
		Recommendations: []string{
			"Learn NextAuth.js for authentication",
			"Implement password-based login",
			"Add OAuth providers (Google, GitHub)",
			"Build an authenticated blog platform",
			"Learn about JWT tokens",
		},
	},
	2: {
		Tier:        2,
		TierName:    "Full-Stack Next.js Developer",
		Description: "You can build and deploy authenticated full-stack applications with Next.js! You have solid experience with modern React development and authentication.",
		Recommendations: []string{
			"Learn Express.js or Hono for backend APIs",
			"Study RESTful API design principles",
			"Learn API documentation with Swagger/OpenAPI",
			"Build a standalone backend API",
			"Explore serverless architectures",
		},
	},
	3: {
		Tier:        3,
		TierName:    "Multi-Framework Developer",
		Description: "You are proficient in multiple frameworks and can build authenticated APIs with proper documentation! You have strong full-stack capabilities across Next.js and backend frameworks.",
		Recommendations: []string{
			"Learn Golang basics",
			"Build a simple REST API with Go",
			"Study Go concurrency patterns",
			"Explore microservices architecture",
			"Learn GraphQL",
		},
	},
	4: {
		Tier:        4,
		TierName:    "Advanced Full-Stack Developer",
		Description: "You are an advanced developer proficient in multiple modern frameworks and languages! You can build complex applications across multiple stacks including Golang.",
		Recommendations: []string{
			"Explore cloud architecture (AWS, GCP, Azure)",
			"Learn Kubernetes and containerization",
			"Study system design principles",
			"Mentor junior developers",
			"Contribute to open-source projects",
		},
	},
}

// fallbackResult is returned when no rule matches. It shares tier 0 and its
// name with the explicit beginner rule but keeps its own text.
var fallbackResult = Result{
	Tier:        0,
	TierName:    "Beginner",
	Description: "Welcome to your development journey! Focus on building strong fundamentals and gradually progress.",
	Recommendations: []string{
		"Master HTML, CSS, and JavaScript",
		"Learn React fundamentals",
		"Complete beginner tutorials",
		"Build small projects to practice",
		"Join coding communities",
	},
}

// ResultFor returns the record authored for tier n. ok is false outside 0-4.
func ResultFor(n int) (r Result, ok bool) {
	if n < 0 || n >= len(tierResults) {
		return Result{}, false
	}
	return tierResults[n].clone(), true
}

// Fallback returns the record used when no rule matches.
func Fallback() Result {
	return fallbackResult.clone()
}
