package rental

type AgendaQuery struct {
	Year   int    `query:"year" validate:"omitempty,gte=2000,lte=2100"`
	Month  int    `query:"month" validate:"omitempty,gte=1,lte=12"`
	Filter string `query:"filter"`
}

type PendingIssuesReq struct {
	HasPendingIssues *bool `json:"has_pending_issues" validate:"required"`
}
