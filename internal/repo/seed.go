package repo

import (
	"context"
	"fmt"

	"artist-portfolio/internal/domain"
)

// Seeder is what Seed writes through.
type Seeder interface {
	CreatePortfolioItem(ctx context.Context, in domain.PortfolioItem) (domain.PortfolioItem, error)
	CreateSkill(ctx context.Context, in domain.Skill) (domain.Skill, error)
}

func str(s string) *string { return &s }

const sampleProjectURL = "https://project-url.com"

// SamplePortfolio is the fixed showcase: three projects per kind.
func SamplePortfolio() []domain.PortfolioItem {
	return []domain.PortfolioItem{
		{
			Title:       "Ethereal Echoes",
			Description: "Electronic music album featuring ambient soundscapes and rhythmic patterns",
			Type:        domain.KindAudio,
			Category:    "music",
			ImageURL:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d",
			MediaURL:    str("/samples/ethereal-echoes.mp3"),
		},
		{
			Title:       "Cosmic Frontier",
			Description: "Sound design for sci-fi game featuring futuristic interfaces and alien environments",
			Type:        domain.KindAudio,
			Category:    "sound-design",
			ImageURL:    "https://images.unsplash.com/photo-1533738363-b7f9aef128ce",
			MediaURL:    str("/samples/cosmic-frontier.mp3"),
		},
		{
			Title:       "Creative Dialogues",
			Description: "Interview podcast series featuring conversations with artists and creators",
			Type:        domain.KindAudio,
			Category:    "podcast",
			ImageURL:    "https://images.unsplash.com/photo-1590602847861-f357a9332bbc",
			MediaURL:    str("/samples/creative-dialogues.mp3"),
		},
		{
			Title:       "Abstract Flows",
			Description: "Motion graphics exploring fluid dynamics and color theory through abstract visuals",
			Type:        domain.KindVisual,
			Category:    "motion",
			ImageURL:    "https://images.unsplash.com/photo-1576694440020-79f70a67f9fb",
		},
		{
			Title:       "Urban Solitude",
			Description: "Short documentary exploring isolation and connection in urban environments",
			Type:        domain.KindVisual,
			Category:    "film",
			ImageURL:    "https://images.unsplash.com/photo-1536240478700-b869070f9279",
		},
		{
			Title:       "Ethereal Landscapes",
			Description: "Digital art series exploring imaginary landscapes and surreal environments",
			Type:        domain.KindVisual,
			Category:    "digital-art",
			ImageURL:    "https://images.unsplash.com/photo-1563089145-599997674d42",
		},
		{
			Title:        "Creative Portfolio",
			Description:  "Interactive portfolio website featuring custom animations and responsive design",
			Type:         domain.KindTechnical,
			Category:     "web",
			ImageURL:     "https://images.unsplash.com/photo-1547658719-da2b51169166",
			Technologies: []string{"React", "GSAP", "Three.js"},
			ProjectURL:   str(sampleProjectURL),
		},
		{
			Title:        "Sound Sculpture",
			Description:  "Interactive installation that responds to movement with dynamic sound and light",
			Type:         domain.KindTechnical,
			Category:     "interactive",
			ImageURL:     "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7",
			Technologies: []string{"Arduino", "Max/MSP", "Custom Hardware"},
			ProjectURL:   str(sampleProjectURL),
		},
		{
			Title:        "Harmony",
			Description:  "Music creation app that uses AI to help users compose original tracks",
			Type:         domain.KindTechnical,
			Category:     "app",
			ImageURL:     "https://images.unsplash.com/photo-1555774698-0b77e0d5fac6",
			Technologies: []string{"React Native", "TensorFlow", "Web Audio API"},
			ProjectURL:   str(sampleProjectURL),
		},
	}
}

// SampleSkills is the fixed skill set: three per kind.
func SampleSkills() []domain.Skill {
	return []domain.Skill{
		{Name: "Music Production", Type: domain.KindAudio, Percentage: 95},
		{Name: "Sound Design", Type: domain.KindAudio, Percentage: 90},
		{Name: "Audio Engineering", Type: domain.KindAudio, Percentage: 85},
		{Name: "Motion Graphics", Type: domain.KindVisual, Percentage: 90},
		{Name: "Video Editing", Type: domain.KindVisual, Percentage: 85},
		{Name: "Digital Art", Type: domain.KindVisual, Percentage: 80},
		{Name: "Web Development", Type: domain.KindTechnical, Percentage: 85},
		{Name: "Creative Coding", Type: domain.KindTechnical, Percentage: 80},
		{Name: "Interactive Design", Type: domain.KindTechnical, Percentage: 90},
	}
}

// Seed inserts the sample portfolio and skills in order.
func Seed(ctx context.Context, s Seeder) error {
	for _, p := range SamplePortfolio() {
		if _, err := s.CreatePortfolioItem(ctx, p); err != nil {
			return fmt.Errorf("seed portfolio %q: %w", p.Title, err)
		}
	}
	for _, sk := range SampleSkills() {
		if _, err := s.CreateSkill(ctx, sk); err != nil {
			return fmt.Errorf("seed skill %q: %w", sk.Name, err)
		}
	}
	return nil
}
