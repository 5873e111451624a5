package dto

// QuizQuestion is the canonical shape of a single quiz question. The list is
// persisted as a JSON document on the quiz record.
type QuizQuestion struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required,min=2"`
	Correct  int      `json:"correct" validate:"gte=0"`
}

// QuizCreateRequest carries the payload for teacher quiz create and update.
type QuizCreateRequest struct {
	Title     string         `json:"title" validate:"required"`
	ModuleID  string         `json:"module_id"`
	Questions []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
}

// AttemptAnswer records the option a user picked for one question.
type AttemptAnswer struct {
	QuestionIndex int  `json:"question_index"`
	Selected      int  `json:"selected"`
	Correct       bool `json:"correct"`
}

// QuizAttemptRequest carries a completed quiz submission. The server stamps
// the caller identity; any client-supplied user reference is ignored.
type QuizAttemptRequest struct {
	QuizID         string          `json:"quiz_id" validate:"required"`
	ModuleID       string          `json:"module_id"`
	Score          int             `json:"score" validate:"gte=0"`
	TotalQuestions int             `json:"total_questions" validate:"gte=1"`
	Answers        []AttemptAnswer `json:"answers"`
}
