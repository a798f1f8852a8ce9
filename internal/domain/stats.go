package domain

type SightingStats struct {
	ReportCount int64            `json:"report_count"`
	ByStatus    map[string]int64 `json:"by_status"`
	Minutes     int              `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}
