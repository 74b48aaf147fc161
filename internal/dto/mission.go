package dto

// MissionSummaryResponse represents a mission in the mission list
// @Description Mission summary
type MissionSummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type MissionListResponse struct {
	Role     string                   `json:"role"`
	Missions []MissionSummaryResponse `json:"missions"`
}

type DataPointResponse struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// MissionDetailResponse is a mission with its dataset. The reference answer is not included.
type MissionDetailResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Question    string              `json:"question"`
	Unit        string              `json:"unit"`
	ChartType   string              `json:"chart_type"`
	Data        []DataPointResponse `json:"data"`
	Completed   bool                `json:"completed"`
}

// CheckAnswerRequest represents a numeric answer submission
// @Description Request body for checking a mission answer
type CheckAnswerRequest struct {
	Answer string `json:"answer"`
}

// CheckAnswerResponse represents the verdict on a submitted answer
type CheckAnswerResponse struct {
	MissionID       string   `json:"mission_id"`
	Correct         bool     `json:"correct"`
	UserAnswer      *float64 `json:"user_answer"` // null when the text is not a number
	ReferenceAnswer float64  `json:"reference_answer"`
	Unit            string   `json:"unit"`
	ToleranceRatio  float64  `json:"tolerance_ratio"`
}

type CompleteMissionResponse struct {
	MissionID         string   `json:"mission_id"`
	AlreadyCompleted  bool     `json:"already_completed"`
	CompletedMissions []string `json:"completed_missions"`
}
