package domain

// PortfolioItem is one showcased project. MediaURL, Technologies and
// ProjectURL are optional and serialize as null when absent.
type PortfolioItem struct {
	ID           int      `gorm:"primaryKey" json:"id"`
	Title        string   `gorm:"size:255;not null" json:"title"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	Type         Kind     `gorm:"size:16;not null;index" json:"type"`
	Category     string   `gorm:"size:32;not null" json:"category"`
	ImageURL     string   `gorm:"size:512;not null" json:"imageUrl"`
	MediaURL     *string  `gorm:"size:512" json:"mediaUrl"`
	Technologies []string `gorm:"serializer:json" json:"technologies"`
	ProjectURL   *string  `gorm:"size:512" json:"projectUrl"`
}

func (PortfolioItem) TableName() string { return "portfolio_items" }

// Clone returns a copy that shares no memory with p.
func (p PortfolioItem) Clone() PortfolioItem {
	out := p
	out.MediaURL = cloneString(p.MediaURL)
	out.ProjectURL = cloneString(p.ProjectURL)
	if p.Technologies != nil {
		out.Technologies = append([]string{}, p.Technologies...)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Skill is a self-rated proficiency shown in the about section.
type Skill struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:128;not null" json:"name"`
	Type       Kind   `gorm:"size:16;not null;index" json:"type"`
	Percentage int    `gorm:"not null" json:"percentage"`
}

func (Skill) TableName() string { return "skills" }
