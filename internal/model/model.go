// Package model holds the entities stored by the repositories along with
// their create, update, filter and stats shapes.
//
// Create and update inputs implement validation.Validatable. Update and
// filter fields are pointers: nil means "not supplied" and is left out of
// the generated statement.
package model

import "github.com/Nishaantmazarallo/Mini-project/internal/validation"

// Level is the difficulty band shared by students and courses.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Program is the course family an inquiry or course belongs to.
const (
	ProgramAbacus            = "abacus"
	ProgramBrainDevelopment  = "brain-development"
	ProgramSchoolPartnership = "school-partnership"
	ProgramCompetition       = "competition"
)

func validate(v any) error {
	return validation.Validator().Struct(v)
}
