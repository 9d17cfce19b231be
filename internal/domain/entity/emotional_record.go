package entity

// RiskLevel as assessed by the backend's text analysis
const (
	RiskLow    = "bajo"
	RiskMedium = "medio"
	RiskHigh   = "alto"
)

// EmotionalRecord is one mood check-in made by a patient.
type EmotionalRecord struct {
	ID             int64    `json:"id_registro"`
	UserID         int64    `json:"id_usuario,omitempty"`
	RecordedAt     string   `json:"fecha_hora"`
	MoodLevel      int      `json:"nivel_animo"`
	PrimaryEmotion string   `json:"emocion_principal,omitempty"`
	Intensity      *float64 `json:"intensidad_emocion,omitempty"`
	Notes          string   `json:"notas,omitempty"`
	Context        string   `json:"contexto,omitempty"`
	Location       string   `json:"ubicacion,omitempty"`
	Weather        string   `json:"clima,omitempty"`
	SentimentLabel string   `json:"sentimiento_label,omitempty"`
	RiskLevel      string   `json:"nivel_riesgo,omitempty"`
	AlertTriggered bool     `json:"alertas_activadas,omitempty"`
}

// IsHighRisk reports whether the backend flagged the record.
func (r *EmotionalRecord) IsHighRisk() bool {
	return r.RiskLevel == RiskHigh || r.AlertTriggered
}

// EmotionalAnalytics is the backend's trend summary for the logged-in patient.
type EmotionalAnalytics struct {
	TotalRecords   int     `json:"total_registros"`
	AverageMood    float64 `json:"promedio_animo"`
	Trend          string  `json:"tendencia"`
	PrimaryEmotion *string `json:"emocion_principal"`
}

// Trend values
const (
	TrendImproving = "mejorando"
	TrendStable    = "estable"
	TrendWorsening = "empeorando"
)

// PatientStatistics are the patient's own lifetime counters.
type PatientStatistics struct {
	TotalRecords    int     `json:"total_registros"`
	AverageMood     float64 `json:"promedio_animo"`
	RecordsLastWeek int     `json:"registros_ultima_semana"`
}
