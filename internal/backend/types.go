package backend

// AccessTokenDetails represents the response from the backend login and
// token refresh endpoints
type AccessTokenDetails struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccountID   string `json:"account_id"`
	Username    string `json:"username"`
	Role        string `json:"role"` // "player" or "commissioner"
}

// ErrorResponse represents an error response body from the backend API
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// LeaderboardEntry is one row of the season leaderboard
type LeaderboardEntry struct {
	Rank      int     `json:"rank"`
	AccountID string  `json:"account_id"`
	Username  string  `json:"username"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Pushes    int     `json:"pushes"`
	ROI       float64 `json:"roi"`
	Streak    int     `json:"streak"` // positive = winning streak, negative = losing
}

type Leaderboard struct {
	Season  string             `json:"season"`
	Entries []LeaderboardEntry `json:"entries"`
}

// ROITrendPoint is one point in the per-week ROI series computed by the backend
type ROITrendPoint struct {
	Week          int     `json:"week"`
	ROI           float64 `json:"roi"`
	CumulativeROI float64 `json:"cumulative_roi"`
	PickCount     int     `json:"pick_count"`
}

type StreakLeader struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Current   int    `json:"current"`
	Longest   int    `json:"longest"`
}

// Pick represents a submitted prediction
type Pick struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	GameID      string  `json:"game_id"`
	Selection   string  `json:"selection"`
	Odds        float64 `json:"odds"`
	Status      string  `json:"status"`           // "pending" or "graded"
	Result      string  `json:"result,omitempty"` // "win", "loss" or "push" once graded
	SubmittedAt string  `json:"submitted_at"`
}

// PickSubmission is the body of a new pick
type PickSubmission struct {
	GameID    string  `json:"game_id"`
	Selection string  `json:"selection"`
	Odds      float64 `json:"odds"`
}

// PickFilter narrows a picks listing. Zero-value fields are omitted from the
// query string.
type PickFilter struct {
	Season string
	Week   string
	Status string
}

// GradeUpdate marks a single pick against the actual game outcome
type GradeUpdate struct {
	PickID string `json:"pick_id"`
	Result string `json:"result"`
}

type BatchGradeRequest struct {
	Grades []GradeUpdate `json:"grades"`
}

type FailedGrade struct {
	PickID string `json:"pick_id"`
	Reason string `json:"reason"`
}

type BatchGradeResult struct {
	Graded int           `json:"graded"`
	Failed []FailedGrade `json:"failed,omitempty"`
}
