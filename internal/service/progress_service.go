package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// ErrUserNotFound indicates an unknown user identifier.
var ErrUserNotFound = errors.New("user not found")

const recentActivityLimit = 5
const leaderboardSize = 10

// ProgressService joins activity records with the module catalog to produce
// per-user completion state and ranked cohort views. Results are always
// recomputed from the raw records on read; there is no summary table and no
// cached aggregate to keep in sync.
type ProgressService interface {
	UserStats(ctx context.Context, userID string) (dto.UserStatsResponse, error)
	StudentsProgress(ctx context.Context) (dto.StudentsProgressResponse, error)
	Leaderboard(ctx context.Context, caller Actor) (dto.LeaderboardResponse, error)
	TeachersProgress(ctx context.Context) (dto.TeachersProgressResponse, error)
}

type progressService struct {
	users       repository.UserRepository
	modules     repository.ModuleRepository
	completions repository.CompletionRepository
	attempts    repository.AttemptRepository
	drills      repository.DrillRepository
	quizzes     repository.QuizRepository
	alerts      repository.AlertRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewProgressService constructs the progress aggregator.
func NewProgressService(
	users repository.UserRepository,
	modules repository.ModuleRepository,
	completions repository.CompletionRepository,
	attempts repository.AttemptRepository,
	drills repository.DrillRepository,
	quizzes repository.QuizRepository,
	alerts repository.AlertRepository,
	logger zerolog.Logger,
) ProgressService {
	return &progressService{
		users:       users,
		modules:     modules,
		completions: completions,
		attempts:    attempts,
		drills:      drills,
		quizzes:     quizzes,
		alerts:      alerts,
		logger:      logger.With().Str("component", "progress_service").Logger(),
		now:         time.Now,
	}
}

func (s *progressService) UserStats(ctx context.Context, userID string) (dto.UserStatsResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserStatsResponse{}, ErrUserNotFound
		}
		return dto.UserStatsResponse{}, err
	}

	modules, err := s.modules.List(ctx)
	if err != nil {
		return dto.UserStatsResponse{}, err
	}

	attempts, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return dto.UserStatsResponse{}, err
	}

	drills, err := s.drills.ListByUser(ctx, userID)
	if err != nil {
		return dto.UserStatsResponse{}, err
	}

	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return dto.UserStatsResponse{}, err
	}

	return s.buildStats(userID, modules, attempts, drills, completions), nil
}

func (s *progressService) buildStats(
	userID string,
	modules []models.Module,
	attempts []models.QuizAttempt,
	drills []models.DrillParticipation,
	completions []models.VideoCompletion,
) dto.UserStatsResponse {
	totalPoints := 0
	for _, attempt := range attempts {
		totalPoints += attempt.Score
	}

	completionByModule := make(map[string]models.VideoCompletion, len(completions))
	for _, completion := range completions {
		completionByModule[completion.ModuleID] = completion
	}

	// First attempt per module wins the breakdown slot; attempts arrive in
	// insertion order.
	attemptByModule := make(map[string]models.QuizAttempt, len(attempts))
	for _, attempt := range attempts {
		if attempt.ModuleID == "" {
			continue
		}
		if _, exists := attemptByModule[attempt.ModuleID]; !exists {
			attemptByModule[attempt.ModuleID] = attempt
		}
	}

	progress := make([]dto.ModuleProgress, 0, len(modules))
	for _, module := range modules {
		entry := dto.ModuleProgress{
			ModuleID:    module.ID,
			ModuleTitle: module.Title,
		}

		if completion, ok := completionByModule[module.ID]; ok {
			completedAt := completion.CompletedAt
			entry.VideoCompleted = true
			entry.VideoCompletedAt = &completedAt
		}

		if attempt, ok := attemptByModule[module.ID]; ok {
			completedAt := attempt.CompletedAt
			entry.QuizCompleted = true
			entry.QuizScore = attempt.Score
			entry.QuizTotal = attempt.TotalQuestions
			entry.QuizCompletedAt = &completedAt
		}

		progress = append(progress, entry)
	}

	return dto.UserStatsResponse{
		UserID:                    userID,
		TotalQuizzesCompleted:     len(attempts),
		TotalPoints:               totalPoints,
		TotalDrillsParticipated:   len(drills),
		CompletedModules:          len(completions),
		TotalModules:              len(modules),
		ModuleProgress:            progress,
		RecentQuizAttempts:        lastN(attempts, recentActivityLimit),
		RecentDrillParticipations: lastN(drills, recentActivityLimit),
	}
}

// rankStudents runs the per-user stats operation for every student and folds
// the results into a ranked cohort, descending by overall score. Ties break
// on student identifier to keep the ordering reproducible.
func (s *progressService) rankStudents(ctx context.Context) ([]dto.StudentProgress, error) {
	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	modules, err := s.modules.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	ranked := make([]dto.StudentProgress, 0, len(students))
	for _, student := range students {
		attempts, err := s.attempts.ListByUser(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		drills, err := s.drills.ListByUser(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		completions, err := s.completions.ListByUser(ctx, student.ID)
		if err != nil {
			return nil, err
		}

		stats := s.buildStats(student.ID, modules, attempts, drills, completions)

		days := int(now.Sub(student.CreatedAt).Hours() / 24)
		if days < 1 {
			days = 1
		}
		speed := float64(stats.CompletedModules) / float64(days)
		overall := float64(stats.TotalPoints) + speed*10

		ranked = append(ranked, dto.StudentProgress{
			StudentID:        student.ID,
			StudentName:      student.FullName,
			StudentUsername:  student.Username,
			TotalPoints:      stats.TotalPoints,
			CompletedModules: stats.CompletedModules,
			TotalModules:     stats.TotalModules,
			TotalQuizzes:     stats.TotalQuizzesCompleted,
			CompletionSpeed:  round2(speed),
			OverallScore:     round1(overall),
			ModuleProgress:   stats.ModuleProgress,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		return ranked[i].StudentID < ranked[j].StudentID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

func (s *progressService) StudentsProgress(ctx context.Context) (dto.StudentsProgressResponse, error) {
	ranked, err := s.rankStudents(ctx)
	if err != nil {
		return dto.StudentsProgressResponse{}, err
	}

	stats := dto.ClassStatistics{TotalStudents: len(ranked)}
	if len(ranked) > 0 {
		var points, modules, quizzes, scores float64
		for _, student := range ranked {
			points += float64(student.TotalPoints)
			modules += float64(student.CompletedModules)
			quizzes += float64(student.TotalQuizzes)
			scores += student.OverallScore
		}
		total := float64(len(ranked))
		stats.AveragePoints = round1(points / total)
		stats.AverageModulesCompleted = round1(modules / total)
		stats.AverageQuizzesCompleted = round1(quizzes / total)
		stats.AverageOverallScore = round1(scores / total)
	}

	return dto.StudentsProgressResponse{
		StudentsProgress: ranked,
		ClassStatistics:  stats,
	}, nil
}

func (s *progressService) Leaderboard(ctx context.Context, caller Actor) (dto.LeaderboardResponse, error) {
	ranked, err := s.rankStudents(ctx)
	if err != nil {
		return dto.LeaderboardResponse{}, err
	}

	var currentUserRank *int
	if caller.Role == models.RoleStudent {
		for _, student := range ranked {
			if student.StudentID == caller.ID {
				rank := student.Rank
				currentUserRank = &rank
				break
			}
		}
	}

	top := ranked
	if len(top) > leaderboardSize {
		top = top[:leaderboardSize]
	}

	// The leaderboard is a compact view; the per-module breakdown stays on
	// the dashboard payload.
	entries := make([]dto.StudentProgress, len(top))
	for i, student := range top {
		student.ModuleProgress = nil
		entries[i] = student
	}

	return dto.LeaderboardResponse{
		Leaderboard:     entries,
		TotalStudents:   len(ranked),
		CurrentUserRank: currentUserRank,
	}, nil
}

func (s *progressService) TeachersProgress(ctx context.Context) (dto.TeachersProgressResponse, error) {
	teachers, err := s.users.ListByRole(ctx, models.RoleTeacher)
	if err != nil {
		return dto.TeachersProgressResponse{}, err
	}

	progress := make([]dto.TeacherProgress, 0, len(teachers))
	for _, teacher := range teachers {
		quizzes, err := s.quizzes.ListByCreator(ctx, teacher.ID)
		if err != nil {
			return dto.TeachersProgressResponse{}, err
		}
		alerts, err := s.alerts.ListByCreator(ctx, teacher.ID)
		if err != nil {
			return dto.TeachersProgressResponse{}, err
		}

		recentQuizzes := make([]dto.ActivitySummary, 0, 3)
		for _, quiz := range lastN(quizzes, 3) {
			recentQuizzes = append(recentQuizzes, dto.ActivitySummary{Title: quiz.Title, CreatedAt: quiz.CreatedAt})
		}
		recentAlerts := make([]dto.ActivitySummary, 0, 3)
		for _, alert := range lastN(alerts, 3) {
			recentAlerts = append(recentAlerts, dto.ActivitySummary{Title: alert.Title, CreatedAt: alert.CreatedAt})
		}

		progress = append(progress, dto.TeacherProgress{
			TeacherID:       teacher.ID,
			TeacherName:     teacher.FullName,
			TeacherUsername: teacher.Username,
			CreatedQuizzes:  len(quizzes),
			CreatedAlerts:   len(alerts),
			AccountCreated:  teacher.CreatedAt,
			RecentActivity: dto.TeacherRecentActivity{
				RecentQuizzes: recentQuizzes,
				RecentAlerts:  recentAlerts,
			},
		})
	}

	return dto.TeachersProgressResponse{
		TeachersProgress: progress,
		TotalTeachers:    len(progress),
	}, nil
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return append([]T{}, items...)
	}
	return append([]T{}, items[len(items)-n:]...)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
