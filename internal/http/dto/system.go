package dto

type (
	HealthResponse struct {
		Status string `json:"status"`
	}

	DBCheckResponse struct {
		DatabaseStatus string `json:"database_status"`
	}

	InitDBResponse struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
)
