package dto

import (
	"time"

	"github.com/noah-isme/siaga-go-api/internal/models"
)

// ModuleProgress describes one catalog module relative to a single user.
type ModuleProgress struct {
	ModuleID         string     `json:"module_id"`
	ModuleTitle      string     `json:"module_title"`
	VideoCompleted   bool       `json:"video_completed"`
	VideoCompletedAt *time.Time `json:"video_completed_at"`
	QuizCompleted    bool       `json:"quiz_completed"`
	QuizScore        int        `json:"quiz_score"`
	QuizTotal        int        `json:"quiz_total"`
	QuizCompletedAt  *time.Time `json:"quiz_completed_at"`
}

// UserStatsResponse aggregates a single user's training activity.
type UserStatsResponse struct {
	UserID                    string                      `json:"user_id"`
	TotalQuizzesCompleted     int                         `json:"total_quizzes_completed"`
	TotalPoints               int                         `json:"total_points"`
	TotalDrillsParticipated   int                         `json:"total_drills_participated"`
	CompletedModules          int                         `json:"completed_modules"`
	TotalModules              int                         `json:"total_modules"`
	ModuleProgress            []ModuleProgress            `json:"module_progress"`
	RecentQuizAttempts        []models.QuizAttempt        `json:"recent_quiz_attempts"`
	RecentDrillParticipations []models.DrillParticipation `json:"recent_drill_participations"`
}

// StudentProgress is one ranked row of the teacher dashboard.
type StudentProgress struct {
	StudentID        string           `json:"student_id"`
	StudentName      string           `json:"student_name"`
	StudentUsername  string           `json:"student_username"`
	TotalPoints      int              `json:"total_points"`
	CompletedModules int              `json:"completed_modules"`
	TotalModules     int              `json:"total_modules"`
	TotalQuizzes     int              `json:"total_quizzes"`
	CompletionSpeed  float64          `json:"completion_speed"`
	OverallScore     float64          `json:"overall_score"`
	ModuleProgress   []ModuleProgress `json:"module_progress,omitempty"`
	Rank             int              `json:"rank"`
}

// ClassStatistics summarises the whole cohort.
type ClassStatistics struct {
	TotalStudents           int     `json:"total_students"`
	AveragePoints           float64 `json:"average_points"`
	AverageModulesCompleted float64 `json:"average_modules_completed"`
	AverageQuizzesCompleted float64 `json:"average_quizzes_completed"`
	AverageOverallScore     float64 `json:"average_overall_score"`
}

// StudentsProgressResponse is the teacher dashboard payload.
type StudentsProgressResponse struct {
	StudentsProgress []StudentProgress `json:"students_progress"`
	ClassStatistics  ClassStatistics   `json:"class_statistics"`
}

// LeaderboardResponse carries the top-ranked students plus the caller's own
// rank when the caller is a student.
type LeaderboardResponse struct {
	Leaderboard     []StudentProgress `json:"leaderboard"`
	TotalStudents   int               `json:"total_students"`
	CurrentUserRank *int              `json:"current_user_rank"`
}

// ActivitySummary is a compact reference to recently created content.
type ActivitySummary struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TeacherRecentActivity lists a teacher's most recent contributions.
type TeacherRecentActivity struct {
	RecentQuizzes []ActivitySummary `json:"recent_quizzes"`
	RecentAlerts  []ActivitySummary `json:"recent_alerts"`
}

// TeacherProgress is one row of the admin teachers-progress view.
type TeacherProgress struct {
	TeacherID       string                `json:"teacher_id"`
	TeacherName     string                `json:"teacher_name"`
	TeacherUsername string                `json:"teacher_username"`
	CreatedQuizzes  int                   `json:"created_quizzes"`
	CreatedAlerts   int                   `json:"created_alerts"`
	AccountCreated  time.Time             `json:"account_created"`
	RecentActivity  TeacherRecentActivity `json:"recent_activity"`
}

// TeachersProgressResponse is the admin teachers-progress payload.
type TeachersProgressResponse struct {
	TeachersProgress []TeacherProgress `json:"teachers_progress"`
	TotalTeachers    int               `json:"total_teachers"`
}
