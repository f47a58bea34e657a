package dto

type HomeResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
