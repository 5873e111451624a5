package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/noah-isme/siaga-go-api/internal/dto"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
)

// SeedService installs the default accounts, module catalog, quizzes, and
// emergency-contact directory on first boot. The whole seed is skipped when an
// admin account already exists, so it is safe to run on every startup.
type SeedService interface {
	EnsureDefaults(ctx context.Context) error
}

type seedService struct {
	users    repository.UserRepository
	modules  repository.ModuleRepository
	quizzes  repository.QuizRepository
	contacts repository.ContactRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewSeedService constructs the default-data seeder.
func NewSeedService(
	users repository.UserRepository,
	modules repository.ModuleRepository,
	quizzes repository.QuizRepository,
	contacts repository.ContactRepository,
	logger zerolog.Logger,
) SeedService {
	return &seedService{
		users:    users,
		modules:  modules,
		quizzes:  quizzes,
		contacts: contacts,
		logger:   logger.With().Str("component", "seed_service").Logger(),
		now:      time.Now,
	}
}

func (s *seedService) EnsureDefaults(ctx context.Context) error {
	admins, err := s.users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := s.seedContacts(ctx); err != nil {
		return err
	}
	moduleIDs, err := s.seedModules(ctx)
	if err != nil {
		return err
	}
	if err := s.seedQuizzes(ctx, moduleIDs); err != nil {
		return err
	}

	s.logger.Info().Msg("default data seeded")

	return nil
}

func (s *seedService) seedUsers(ctx context.Context) error {
	accounts := []struct {
		username string
		email    string
		fullName string
		role     string
		password string
	}{
		{"admin", "admin@school.edu", "System Administrator", models.RoleAdmin, "admin123"},
		{"teacher1", "teacher@school.edu", "John Teacher", models.RoleTeacher, "teacher123"},
		{"student1", "student@school.edu", "Jane Student", models.RoleStudent, "student123"},
	}

	for _, account := range accounts {
		hash, err := HashPassword(account.password)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     account.username,
			Email:        account.email,
			FullName:     account.fullName,
			Role:         account.role,
			PasswordHash: hash,
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return err
		}
	}

	return nil
}

func (s *seedService) seedContacts(ctx context.Context) error {
	contacts := []models.EmergencyContact{
		{Name: "Police", Phone: "911", Type: "police", Description: "Emergency Police Services"},
		{Name: "Fire Department", Phone: "911", Type: "fire", Description: "Fire Emergency Services"},
		{Name: "Ambulance", Phone: "911", Type: "ambulance", Description: "Medical Emergency Services"},
		{Name: "Disaster Helpline", Phone: "1-800-DISASTER", Type: "disaster", Description: "Disaster Response Helpline"},
	}

	now := s.now().UTC()
	for i := range contacts {
		contacts[i].UpdatedAt = now
		if err := s.contacts.Create(ctx, &contacts[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *seedService) seedModules(ctx context.Context) (map[string]string, error) {
	modules := []models.Module{
		{
			Title:         "Fire Safety",
			Description:   "Learn essential fire safety procedures, evacuation techniques, and prevention methods to protect yourself and others during fire emergencies.",
			VideoURL:      "https://youtu.be/ReL-DM9xhpI?si=tDeWcsHd4mK1yEAv",
			VideoDuration: 8,
			Order:         1,
		},
		{
			Title:         "Earthquake Response",
			Description:   "Master the Drop, Cover, and Hold On technique and learn essential earthquake safety measures and post-earthquake procedures.",
			VideoURL:      "https://youtu.be/BLEPakj1YTY?si=h61YmR5yZQfYxapW",
			VideoDuration: 7,
			Order:         2,
		},
		{
			Title:         "Flood Preparedness",
			Description:   "Understand flood risks, evacuation procedures, water safety protocols, and how to prepare for flood emergencies.",
			VideoURL:      "https://youtu.be/43M5mZuzHF8?si=t7_jYxbItFkDFfnT",
			VideoDuration: 6,
			Order:         3,
		},
		{
			Title:         "Emergency Kits",
			Description:   "Learn what essential supplies to include in emergency kits for your home, school, and workplace to be prepared for any disaster.",
			VideoURL:      "https://youtu.be/UmiGvOha7As?si=fX8Ns_F_Nya2gseu",
			VideoDuration: 9,
			Order:         4,
		},
	}

	ids := make(map[string]string, len(modules))
	for i := range modules {
		if err := s.modules.Create(ctx, &modules[i]); err != nil {
			return nil, err
		}
		ids[modules[i].Title] = modules[i].ID
	}

	return ids, nil
}

func (s *seedService) seedQuizzes(ctx context.Context, moduleIDs map[string]string) error {
	quizzes := []struct {
		title     string
		module    string
		questions []dto.QuizQuestion
	}{
		{
			title:  "Fire Safety Quiz",
			module: "Fire Safety",
			questions: []dto.QuizQuestion{
				{
					Question: "What should you do first when you discover a fire?",
					Options:  []string{"Try to put it out yourself", "Alert others and activate fire alarm", "Gather your belongings", "Take photos for insurance"},
					Correct:  1,
				},
				{
					Question: "When escaping from a fire, you should:",
					Options:  []string{"Stand upright and run quickly", "Stay low and crawl below smoke", "Use the elevator for quick escape", "Stop to help others first"},
					Correct:  1,
				},
				{
					Question: "Before opening a door during a fire emergency, you should:",
					Options:  []string{"Open it quickly to escape fast", "Feel the door handle and door for heat", "Knock to see if anyone is behind it", "Break it down if it's locked"},
					Correct:  1,
				},
				{
					Question: "If your clothes catch fire, you should:",
					Options:  []string{"Run to get help", "Stop, Drop, and Roll", "Jump into water immediately", "Use your hands to pat out flames"},
					Correct:  1,
				},
				{
					Question: "How often should smoke detector batteries be checked?",
					Options:  []string{"Once a year", "Every 6 months", "Once a month", "Only when they beep"},
					Correct:  2,
				},
			},
		},
		{
			title:  "Earthquake Response Quiz",
			module: "Earthquake Response",
			questions: []dto.QuizQuestion{
				{
					Question: "What is the correct response when you feel earthquake shaking?",
					Options:  []string{"Run outside immediately", "Stand in a doorway", "Drop, Cover, and Hold On", "Get under a bed"},
					Correct:  2,
				},
				{
					Question: "During an earthquake, the safest place to take cover is:",
					Options:  []string{"Under a sturdy desk or table", "In a doorway", "Near a window", "Under stairs"},
					Correct:  0,
				},
				{
					Question: "How long should you hold your protective position during earthquake shaking?",
					Options:  []string{"Until counting to 10", "Until the shaking stops completely", "For exactly 30 seconds", "Until you hear the all-clear signal"},
					Correct:  1,
				},
				{
					Question: "After an earthquake stops, you should:",
					Options:  []string{"Immediately run outside", "Check for injuries and hazards first", "Turn on all lights", "Use the phone to call everyone"},
					Correct:  1,
				},
				{
					Question: "If you're driving during an earthquake, you should:",
					Options:  []string{"Speed up to get home quickly", "Stop immediately wherever you are", "Pull over safely and stay in the car", "Get out and lie on the ground"},
					Correct:  2,
				},
			},
		},
		{
			title:  "Flood Preparedness Quiz",
			module: "Flood Preparedness",
			questions: []dto.QuizQuestion{
				{
					Question: "What is the most important rule about walking in flood water?",
					Options:  []string{"Only walk if water is clear", "Never walk in moving water", "Walk quickly to minimize exposure", "Always walk with a group"},
					Correct:  1,
				},
				{
					Question: "How much moving water can knock down an adult?",
					Options:  []string{"12 inches", "6 inches", "18 inches", "24 inches"},
					Correct:  1,
				},
				{
					Question: "If you encounter a flooded road while driving, you should:",
					Options:  []string{"Drive through quickly", "Test the depth slowly", "Turn around and find another route", "Wait for other cars to go first"},
					Correct:  2,
				},
				{
					Question: "When preparing for a flood, which action should you take first?",
					Options:  []string{"Move to higher ground", "Gather important documents", "Fill bathtubs with water", "Board up windows"},
					Correct:  0,
				},
				{
					Question: "After a flood, before entering your home you should:",
					Options:  []string{"Rush in to assess damage", "Check for structural damage and hazards", "Turn on electricity to see better", "Start cleaning immediately"},
					Correct:  1,
				},
			},
		},
		{
			title:  "Emergency Kits Quiz",
			module: "Emergency Kits",
			questions: []dto.QuizQuestion{
				{
					Question: "How much water should you store per person per day in an emergency kit?",
					Options:  []string{"1/2 gallon", "1 gallon", "2 gallons", "3 gallons"},
					Correct:  1,
				},
				{
					Question: "Emergency food supplies should last for at least:",
					Options:  []string{"24 hours", "48 hours", "72 hours (3 days)", "1 week"},
					Correct:  2,
				},
				{
					Question: "Which of these is NOT essential in a basic emergency kit?",
					Options:  []string{"First aid kit", "Matches in waterproof container", "Laptop computer", "Battery-powered radio"},
					Correct:  2,
				},
				{
					Question: "How often should you check and update your emergency kit?",
					Options:  []string{"Once a year", "Every 6 months", "Every 3 months", "Only when items expire"},
					Correct:  1,
				},
				{
					Question: "The best location for your home emergency kit is:",
					Options:  []string{"In the basement", "In a cool, dry, easily accessible place", "In the garage", "In the attic"},
					Correct:  1,
				},
			},
		},
	}

	for _, entry := range quizzes {
		questions, err := json.Marshal(entry.questions)
		if err != nil {
			return err
		}
		quiz := models.Quiz{
			Title:     entry.title,
			ModuleID:  moduleIDs[entry.module],
			Questions: datatypes.JSON(questions),
		}
		if err := s.quizzes.Create(ctx, &quiz); err != nil {
			return err
		}
	}

	return nil
}
