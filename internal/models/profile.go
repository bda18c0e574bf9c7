package models

type Link struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type PersonalInformation struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Links    Link   `json:"links"`
}

type Experience struct {
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
	TechStack        []string `json:"tech_stack,omitempty"`
}

type Project struct {
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa,omitempty"`
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Profile is the candidate master profile the resume prompt is built from,
// loaded from config/profile.json
type Profile struct {
	PersonalInformation PersonalInformation `json:"personal_information"`
	Summary             string              `json:"summary"`
	Skills              map[string][]string `json:"skills"`
	Experience          []Experience        `json:"experience"`
	Projects            []Project           `json:"projects"`
	Education           []Education         `json:"education"`
	Languages           []Language          `json:"languages,omitempty"`
}
