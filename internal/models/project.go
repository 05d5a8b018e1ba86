package models

// UserProfile is the display identity embedded in user records
type UserProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
}

// ProjectUser is the customer reference embedded in a project
type ProjectUser struct {
	ID      string      `json:"_id"`
	Profile UserProfile `json:"profile"`
}

// Project is one row of the project search results
type Project struct {
	ID   string      `json:"_id"`
	Name string      `json:"name,omitempty"`
	User ProjectUser `json:"user"`
}

// ProjectSearchResult is the paginated project search response
type ProjectSearchResult struct {
	Projects []Project `json:"projects"`
	Count    int       `json:"count"`
}

// ProjectFilters mirrors the search filter body the backend expects. The
// zero value plus Status/Phase is what the console sends.
type ProjectFilters struct {
	CustomerName []string  `json:"customerName"`
	DesignerName []string  `json:"designerName"`
	RoomName     []string  `json:"roomName"`
	Email        []string  `json:"email"`
	QuizStatus   []string  `json:"quizStatus"`
	Phase        []string  `json:"phase"`
	Status       []string  `json:"status"`
	Country      string    `json:"country"`
	ProjectType  string    `json:"projectType"`
	StartDate    DateRange `json:"startDate"`
	Delivery     DateRange `json:"delivery"`
	Pause        bool      `json:"pause"`
	DesignPhase  []string  `json:"designPhase"`
}

// DefaultProjectFilters returns the filter set the console sends when the
// user has not narrowed the search: active US projects of any type.
func DefaultProjectFilters() ProjectFilters {
	return ProjectFilters{
		CustomerName: []string{},
		DesignerName: []string{},
		RoomName:     []string{},
		Email:        []string{},
		QuizStatus:   []string{},
		Phase:        []string{},
		Status:       []string{"active"},
		Country:      "US",
		ProjectType:  "all",
		DesignPhase:  []string{},
	}
}

// ProjectSearchRequest is the full search body: filters plus sort order
type ProjectSearchRequest struct {
	Filters ProjectFilters `json:"filters"`
	Sort    map[string]int `json:"sort"`
}
