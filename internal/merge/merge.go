// Package merge copies extracted resume data onto a user's profile under
// explicit conflict-resolution rules. Apply is a pure function over its
// inputs: no I/O, no clock, no store access.
package merge

import (
	"strings"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

// stringRule binds one extracted value to one profile attribute. Every
// scalar field goes through the same gate, so the replaceExisting semantics
// live in exactly one code path.
type stringRule struct {
	extracted string
	current   func() string
	assign    func(string)
}

// Apply merges the extraction result into the user. When replaceExisting is
// true, any non-empty extracted value overwrites the stored one; when false,
// extracted values only fill fields that are still empty. Extraction never
// blanks a field: empty extracted values are skipped under either policy.
func Apply(user *domain.User, res *domain.ExtractionResult, replaceExisting bool) {
	if res == nil {
		return
	}

	applyProfile(user, &res.Profile, replaceExisting)
	applyLists(user, res, replaceExisting)
	applySkills(user, res.Skills, replaceExisting)
}

func applyProfile(user *domain.User, p *domain.ExtractedProfile, replace bool) {
	rules := []stringRule{
		{
			extracted: p.Phone,
			current:   func() string { return user.ContactNumber },
			assign:    func(v string) { user.ContactNumber = v },
		},
		{
			extracted: p.Summary,
			current:   func() string { return user.Bio },
			assign:    func(v string) { user.Bio = v },
		},
		{
			extracted: p.Location,
			current:   func() string { return user.Location },
			assign:    func(v string) { user.Location = v },
		},
	}

	// The single link field routes to linkedin or website by URL content.
	if strings.Contains(p.URL, "linkedin.com") {
		rules = append(rules, stringRule{
			extracted: p.URL,
			current:   func() string { return user.LinkedinProfile },
			assign:    func(v string) { user.LinkedinProfile = v },
		})
	} else {
		rules = append(rules, stringRule{
			extracted: p.URL,
			current:   func() string { return user.Website },
			assign:    func(v string) { user.Website = v },
		})
	}

	// The extracted name is one string; it splits on the first whitespace
	// run and gates on the stored first name.
	rules = append(rules, stringRule{
		extracted: p.Name,
		current:   func() string { return user.FirstName },
		assign: func(v string) {
			first, last := splitName(v)
			user.FirstName = first
			if last != "" {
				user.LastName = last
			}
		},
	})

	for _, r := range rules {
		if r.extracted == "" {
			continue
		}
		if replace || r.current() == "" {
			r.assign(r.extracted)
		}
	}
}

func applyLists(user *domain.User, res *domain.ExtractionResult, replace bool) {
	// List-valued fields replace wholesale, never element-by-element.
	if len(res.WorkExperiences) > 0 && (replace || len(user.WorkExperiences) == 0) {
		user.WorkExperiences = convertWork(res.WorkExperiences)
	}

	if len(res.Educations) > 0 && (replace || len(user.Educations) == 0) {
		user.Educations = convertEducations(res.Educations)
	}

	if len(res.Projects) > 0 && (replace || len(user.Projects) == 0) {
		if projects := convertProjects(res.Projects); len(projects) > 0 {
			user.Projects = projects
		}
	}
}

func convertWork(in []domain.ExtractedWork) []domain.WorkExperience {
	out := make([]domain.WorkExperience, 0, len(in))
	for _, we := range in {
		out = append(out, domain.WorkExperience{
			Company:      we.Company,
			JobTitle:     we.JobTitle,
			Date:         we.Date,
			Descriptions: we.Descriptions,
		})
	}
	return out
}

func convertEducations(in []domain.ExtractedSchool) []domain.Education {
	out := make([]domain.Education, 0, len(in))
	for _, ed := range in {
		out = append(out, domain.Education{
			School:       ed.School,
			Degree:       ed.Degree,
			Date:         ed.Date,
			GPA:          ed.GPA,
			Descriptions: ed.Descriptions,
		})
	}
	return out
}

// convertProjects drops entries with both name and date blank; either one
// populated keeps the entry.
func convertProjects(in []domain.ExtractedProject) []domain.Project {
	out := make([]domain.Project, 0, len(in))
	for _, p := range in {
		if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Date) == "" {
			continue
		}
		out = append(out, domain.Project{
			Name:         p.Name,
			Date:         p.Date,
			Descriptions: p.Descriptions,
		})
	}
	return out
}

func applySkills(user *domain.User, skills *domain.ExtractedSkills, replace bool) {
	if skills == nil {
		return
	}

	if replace || len(user.FeaturedSkills) == 0 {
		if featured := convertFeatured(skills.FeaturedSkills); len(featured) > 0 {
			user.FeaturedSkills = featured
		}
	}

	if replace || len(user.Skills) == 0 {
		if flat := flattenSkills(skills); len(flat) > 0 {
			user.Skills = flat
		}
	}
}

// convertFeatured keeps rated skills with a usable name, defaulting the
// rating to 1 when the parser omitted it.
func convertFeatured(in []domain.ExtractedFeaturedSkill) []domain.FeaturedSkill {
	out := make([]domain.FeaturedSkill, 0, len(in))
	for _, fs := range in {
		name := strings.TrimSpace(fs.Skill)
		if name == "" || name == "," {
			continue
		}
		rating := 1
		if fs.Rating != nil {
			rating = *fs.Rating
		}
		out = append(out, domain.FeaturedSkill{Skill: name, Rating: rating})
	}
	return out
}

// flattenSkills assembles the flat skill list from featured names and
// free-text description entries, de-duplicated in first-seen order.
// Description entries containing commas are split into individual tokens.
func flattenSkills(skills *domain.ExtractedSkills) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		s := strings.TrimSpace(raw)
		if s == "" || s == "," {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, fs := range skills.FeaturedSkills {
		add(fs.Skill)
	}

	for _, desc := range skills.Descriptions {
		if strings.Contains(desc, ",") {
			for _, part := range strings.Split(desc, ",") {
				add(part)
			}
			continue
		}
		add(desc)
	}

	return out
}

// splitName splits a full name on the first whitespace run.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
