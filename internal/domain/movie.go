package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie is a single result returned by the metadata provider.
// Only ID is required; every other field falls back to its zero value
// and the display helpers below substitute a placeholder.
type Movie struct {
	ID               int64   // Provider identifier (required)
	Title            string  // Display title
	Overview         string  // Plot synopsis
	PosterPath       string  // Relative poster path, e.g. "/abc.jpg"
	ReleaseDate      string  // "YYYY-MM-DD" or empty
	OriginalLanguage string  // ISO 639-1 code, e.g. "en"
	VoteAverage      float64 // 0-10 scale, 0 when unrated
	Popularity       float64 // Provider popularity score
}

// DisplayTitle returns the title or a placeholder when the provider sent none
func (m Movie) DisplayTitle() string {
	if strings.TrimSpace(m.Title) == "" {
		return "Untitled"
	}
	return m.Title
}

// Year returns the release year parsed from ReleaseDate (0 if unknown)
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// YearLabel returns the release year or "N/A"
func (m Movie) YearLabel() string {
	if y := m.Year(); y > 0 {
		return strconv.Itoa(y)
	}
	return "N/A"
}

// RatingLabel returns the vote average with one decimal or "N/A"
func (m Movie) RatingLabel() string {
	if m.VoteAverage <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// PosterURL joins the poster path onto an image base URL.
// Returns an empty string when the movie has no poster.
func (m Movie) PosterURL(imageBase string) string {
	if m.PosterPath == "" {
		return ""
	}
	return strings.TrimRight(imageBase, "/") + "/" + strings.TrimLeft(m.PosterPath, "/")
}
