package dto

type StatisticsResponse struct {
	ActivePatients        int    `json:"active_patients"`
	ActivePsychologists   int    `json:"active_psychologists"`
	TotalEmotionalRecords int    `json:"total_emotional_records"`
	RecordsLastMonth      int    `json:"records_last_month"`
	ScheduledAppointments int    `json:"scheduled_appointments"`
	QueriedAt             string `json:"queried_at,omitempty"`
}

type CountResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type GeneralReportResponse struct {
	PeriodDays    int             `json:"period_days"`
	TotalRecords  int             `json:"total_records"`
	Emotions      []CountResponse `json:"emotions"`
	Risks         []CountResponse `json:"risks"`
	RecordsPerDay []CountResponse `json:"records_per_day"`
}

type PsychologistActivityResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	ActivePatients    int    `json:"active_patients"`
	SessionsThisMonth int    `json:"sessions_this_month"`
	CompletedSessions int    `json:"completed_sessions"`
	LastAccess        string `json:"last_access,omitempty"`
}

type UsersSummaryResponse struct {
	ByRole   []CountResponse `json:"by_role"`
	Active   int             `json:"active"`
	Inactive int             `json:"inactive"`
	Total    int             `json:"total"`
}
