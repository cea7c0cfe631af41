package domain

// ExtractionResult is the structured output of one resume-parsing run. It is
// transient: only the fields the merge engine copies into a User survive.
// The shape mirrors what the parser emits; unknown keys are ignored.
type ExtractionResult struct {
	Profile         ExtractedProfile   `json:"profile"`
	WorkExperiences []ExtractedWork    `json:"workExperiences"`
	Educations      []ExtractedSchool  `json:"educations"`
	Projects        []ExtractedProject `json:"projects"`
	Skills          *ExtractedSkills   `json:"skills"`
}

type ExtractedProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Location string `json:"location"`
}

type ExtractedWork struct {
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

type ExtractedSchool struct {
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa"`
	Descriptions []string `json:"descriptions"`
}

type ExtractedProject struct {
	Name         string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

type ExtractedFeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating *int   `json:"rating"`
}

type ExtractedSkills struct {
	FeaturedSkills []ExtractedFeaturedSkill `json:"featuredSkills"`
	Descriptions   []string                 `json:"descriptions"`
}
