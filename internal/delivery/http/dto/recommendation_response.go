package dto

type RecommendationRequest struct {
	Skills *string `json:"skills"`
}

const StatusSuccess = "success"

type RecommendationResponse struct {
	RecommendationID    string   `json:"recommendation_id"`
	CareerID            string   `json:"career_id"`
	UserSkills          string   `json:"user_skills"`
	CareerPath          string   `json:"career_path"`
	Description         string   `json:"description"`
	NextSteps           []string `json:"next_steps"`
	SalaryRange         string   `json:"salary_range"`
	JobGrowth           string   `json:"job_growth"`
	PersonalizedMessage string   `json:"personalized_message"`
	ConfidenceScore     string   `json:"confidence_score"`
	Status              string   `json:"status"`
}
