package entity

// Statistics are the platform-wide counters shown on the admin dashboard.
type Statistics struct {
	ActivePatients        int    `json:"total_pacientes_activos"`
	ActivePsychologists   int    `json:"total_psicologos_activos"`
	TotalEmotionalRecords int    `json:"total_registros_emocionales"`
	RecordsLastMonth      int    `json:"registros_ultimo_mes"`
	ScheduledAppointments int    `json:"citas_programadas"`
	QueriedAt             string `json:"fecha_consulta,omitempty"`
}

// DailyCount is one point of a per-day series.
type DailyCount struct {
	Date  string `json:"fecha"`
	Total int    `json:"total"`
}

// GeneralReport aggregates emotional records over a period.
type GeneralReport struct {
	PeriodDays          int            `json:"periodo_dias"`
	TotalRecords        int            `json:"total_registros"`
	EmotionDistribution map[string]int `json:"distribucion_emociones"`
	RiskDistribution    map[string]int `json:"distribucion_riesgos"`
	RecordsPerDay       []DailyCount   `json:"registros_por_dia"`
}

// PsychologistActivity is one row of the per-psychologist report.
type PsychologistActivity struct {
	ID                int64  `json:"id"`
	Name              string `json:"nombre"`
	Email             string `json:"email"`
	ActivePatients    int    `json:"pacientes_activos"`
	SessionsThisMonth int    `json:"citas_este_mes"`
	CompletedSessions int    `json:"citas_completadas_total"`
	LastAccess        string `json:"ultimo_acceso,omitempty"`
}

// UsersSummary counts accounts by role and by active state.
type UsersSummary struct {
	ByRole   map[string]int `json:"por_rol"`
	ByStatus struct {
		Active   int `json:"activos"`
		Inactive int `json:"inactivos"`
	} `json:"por_estado"`
	Total int `json:"total"`
}
