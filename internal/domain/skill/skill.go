// Package skill contains the skill catalog entity and its persistence port.
package skill

import (
	"fmt"
	"time"
)

// Skill is a routable competency. Agents hold skills, tickets require
// skills, and the focus view matches the two sets. Skills flagged for
// smart assign are offered to the advisor as classification targets.
type Skill struct {
	id          string
	name        string
	description string
	smartAssign bool
	createdAt   time.Time
}

func NewSkill(id, name, description string, smartAssign bool) (*Skill, error) {
	if id == "" {
		return nil, fmt.Errorf("skill ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return &Skill{
		id:          id,
		name:        name,
		description: description,
		smartAssign: smartAssign,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructSkill(id, name, description string, smartAssign bool, createdAt time.Time) *Skill {
	return &Skill{
		id:          id,
		name:        name,
		description: description,
		smartAssign: smartAssign,
		createdAt:   createdAt,
	}
}

func (s *Skill) ID() string           { return s.id }
func (s *Skill) Name() string         { return s.name }
func (s *Skill) Description() string  { return s.description }
func (s *Skill) SmartAssign() bool    { return s.smartAssign }
func (s *Skill) CreatedAt() time.Time { return s.createdAt }
