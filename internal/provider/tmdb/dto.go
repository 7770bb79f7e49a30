package tmdb

// ListResponse is the envelope shared by /discover/movie and /search/movie.
// Response/Error follow the OMDb-style failure convention; Success and
// StatusMessage follow TMDB's own. Either one marks a failed call.
type ListResponse struct {
	Page          int           `json:"page"`
	Results       []MovieResult `json:"results"`
	TotalResults  int           `json:"total_results"`
	TotalPages    int           `json:"total_pages"`
	Response      string        `json:"Response,omitempty"`
	Error         string        `json:"error,omitempty"`
	Success       *bool         `json:"success,omitempty"`
	StatusCode    int           `json:"status_code,omitempty"`
	StatusMessage string        `json:"status_message,omitempty"`
}

// MovieResult is one element of the results array
type MovieResult struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	OriginalLanguage string  `json:"original_language"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
}

// failed reports whether the body signals a provider-level failure
func (r *ListResponse) failed() bool {
	if r.Response == "False" {
		return true
	}
	return r.Success != nil && !*r.Success
}

// failureMessage picks the provider message, empty when none was sent
func (r *ListResponse) failureMessage() string {
	if r.Error != "" {
		return r.Error
	}
	return r.StatusMessage
}
