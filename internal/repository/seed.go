package repository

import (
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// seedDefaults inserts the default templates, tags and goal categories on
// first startup. A non-empty templates table means seeding already ran.
func seedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.NoteTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	templates := []model.NoteTemplate{
		{
			Name:        "Morning Reflection",
			Content:     "How am I feeling this morning? What are my intentions for the day?",
			Description: "Start your day with mindful reflection",
			Category:    "Daily",
		},
		{
			Name:        "Work Session",
			Content:     "What am I working on? How focused do I feel? Any challenges or breakthroughs?",
			Description: "Track work-related thoughts and productivity",
			Category:    "Work",
		},
		{
			Name:        "Mood Check",
			Content:     "How am I feeling right now? What might be influencing my mood?",
			Description: "Quick emotional state assessment",
			Category:    "Emotional",
		},
		{
			Name:        "Gratitude",
			Content:     "What am I grateful for right now? What went well?",
			Description: "Focus on positive aspects and appreciation",
			Category:    "Personal Development",
		},
		{
			Name:        "Evening Wind-down",
			Content:     "How was my day? What did I learn? What am I looking forward to tomorrow?",
			Description: "End-of-day reflection and planning",
			Category:    "Daily",
		},
	}

	tags := []model.Tag{
		{Name: "Happy", Color: "#10B981"},
		{Name: "Stressed", Color: "#EF4444"},
		{Name: "Productive", Color: "#3B82F6"},
		{Name: "Tired", Color: "#6B7280"},
		{Name: "Excited", Color: "#F59E0B"},
		{Name: "Anxious", Color: "#8B5CF6"},
		{Name: "Peaceful", Color: "#06B6D4"},
		{Name: "Focused", Color: "#84CC16"},
	}

	categories := []model.GoalCategory{
		{Name: "Health & Fitness", Description: "Physical health, exercise, nutrition, and wellness goals", Icon: "Heart", Color: "#EF4444", IsDefault: true},
		{Name: "Career & Professional", Description: "Work-related goals, skill development, and career advancement", Icon: "Briefcase", Color: "#3B82F6", IsDefault: true},
		{Name: "Education & Learning", Description: "Learning new skills, courses, certifications, and knowledge acquisition", Icon: "BookOpen", Color: "#8B5CF6", IsDefault: true},
		{Name: "Personal Development", Description: "Self-improvement, habits, mindfulness, and personal growth", Icon: "User", Color: "#10B981", IsDefault: true},
		{Name: "Relationships & Social", Description: "Family, friends, networking, and social connections", Icon: "Users", Color: "#F59E0B", IsDefault: true},
		{Name: "Finance & Money", Description: "Savings, investments, budgeting, and financial planning", Icon: "DollarSign", Color: "#059669", IsDefault: true},
		{Name: "Creative & Hobbies", Description: "Artistic pursuits, hobbies, creative projects, and self-expression", Icon: "Palette", Color: "#EC4899", IsDefault: true},
		{Name: "Travel & Adventure", Description: "Travel plans, experiences, and adventure goals", Icon: "MapPin", Color: "#06B6D4", IsDefault: true},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&templates).Error; err != nil {
			return err
		}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}
		return tx.Create(&categories).Error
	})
}
