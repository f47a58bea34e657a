package dto

type CareerItem struct {
	ID          string `json:"id"`
	CareerPath  string `json:"career_path"`
	Description string `json:"description"`
}

type CareerListResponse struct {
	Careers []CareerItem `json:"careers"`
}

type CareerStatsItem struct {
	ID         string `json:"id"`
	CareerPath string `json:"career_path"`
	Hits       int64  `json:"hits"`
}

type CareerStatsResponse struct {
	Stats []CareerStatsItem `json:"stats"`
}
