// Package stats turns raw grade and attendance rows into the percentages,
// averages and rankings shown on the admin dashboard screens. Everything
// here is a pure function over rows already fetched from the database.
package stats

import (
	"math"
	"sort"
	"strings"
)

// coursePrefix is stripped from a course's Arabic name to obtain the
// keyword used for string-based membership matching.
const coursePrefix = "دورة "

// StudentInfo carries the student fields the engine needs
type StudentInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameAr       string `json:"name_ar"`
	Grade        string `json:"grade"`
	GradeAr      string `json:"grade_ar"`
	ClassName    string `json:"class_name"`
	SubclassName string `json:"subclass_name"`
}

// GradeRecord is one grade row
type GradeRecord struct {
	StudentID string
	Score     float64
	MaxScore  float64
}

// AttendanceRecord is one attendance row
type AttendanceRecord struct {
	StudentID string
	Status    string
}

// StudentAverage is a student's mean grade percentage
type StudentAverage struct {
	Student    StudentInfo `json:"student"`
	Average    float64     `json:"average"`
	GradeCount int         `json:"grade_count"`
}

// AttendanceRate is a student's attendance percentage
type AttendanceRate struct {
	Student     StudentInfo `json:"student"`
	Rate        float64     `json:"rate"`
	PresentDays int         `json:"present_days"`
	TotalDays   int         `json:"total_days"`
}

// CourseAverage is the mean of student averages within a course
type CourseAverage struct {
	Name         string  `json:"name"`
	NameAr       string  `json:"name_ar"`
	Average      float64 `json:"average"`
	StudentCount int     `json:"student_count"`
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percentage computes a grade's percentage rounded to one decimal.
// Records with a zero or negative max score contribute nothing to any
// average; the second return is false for those.
func Percentage(score, maxScore float64) (float64, bool) {
	if maxScore <= 0 {
		return 0, false
	}
	return Round1(score / maxScore * 100), true
}

// StudentAverages computes each student's mean grade percentage.
// Students with no usable grade rows are excluded entirely rather than
// reported as 0. Output order follows the input student order.
func StudentAverages(students []StudentInfo, grades []GradeRecord) []StudentAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, g := range grades {
		pct, ok := Percentage(g.Score, g.MaxScore)
		if !ok {
			continue
		}
		sums[g.StudentID] += pct
		counts[g.StudentID]++
	}

	averages := make([]StudentAverage, 0, len(students))
	for _, s := range students {
		n := counts[s.ID]
		if n == 0 {
			continue
		}
		averages = append(averages, StudentAverage{
			Student:    s,
			Average:    Round1(sums[s.ID] / float64(n)),
			GradeCount: n,
		})
	}
	return averages
}

// AttendanceRates computes each student's attendance percentage. Unlike
// grade averages, a student with no attendance rows is reported with a
// rate of exactly 0, not excluded.
func AttendanceRates(students []StudentInfo, records []AttendanceRecord) []AttendanceRate {
	present := make(map[string]int)
	total := make(map[string]int)
	for _, r := range records {
		total[r.StudentID]++
		if r.Status == "present" {
			present[r.StudentID]++
		}
	}

	rates := make([]AttendanceRate, 0, len(students))
	for _, s := range students {
		rate := AttendanceRate{Student: s, PresentDays: present[s.ID], TotalDays: total[s.ID]}
		if rate.TotalDays > 0 {
			rate.Rate = Round1(float64(rate.PresentDays) / float64(rate.TotalDays) * 100)
		}
		rates = append(rates, rate)
	}
	return rates
}

// CourseKeyword derives the matching keyword from a course's Arabic name
func CourseKeyword(nameAr string) string {
	return strings.TrimPrefix(nameAr, coursePrefix)
}

// MatchesCourse reports whether a student belongs to the course with the
// given keyword. Membership is substring containment checked against
// class_name, grade_ar, grade and subclass_name, in that order.
func MatchesCourse(s StudentInfo, keyword string) bool {
	if keyword == "" {
		return false
	}
	for _, field := range []string{s.ClassName, s.GradeAr, s.Grade, s.SubclassName} {
		if field != "" && strings.Contains(field, keyword) {
			return true
		}
	}
	return false
}

// CourseAverages computes the mean of student averages per course. Only
// students with a defined average participate; a course with no matching
// averaged students is reported with zero students and average 0.
func CourseAverages(courses []CourseAverage, students []StudentInfo, averages []StudentAverage) []CourseAverage {
	byID := make(map[string]float64, len(averages))
	for _, a := range averages {
		byID[a.Student.ID] = a.Average
	}

	out := make([]CourseAverage, 0, len(courses))
	for _, course := range courses {
		keyword := CourseKeyword(course.NameAr)
		var sum float64
		var n int
		for _, s := range students {
			avg, ok := byID[s.ID]
			if !ok || !MatchesCourse(s, keyword) {
				continue
			}
			sum += avg
			n++
		}
		result := CourseAverage{Name: course.Name, NameAr: course.NameAr, StudentCount: n}
		if n > 0 {
			result.Average = Round1(sum / float64(n))
		}
		out = append(out, result)
	}
	return out
}

// RankByAverage sorts student averages descending. The sort is stable so
// ties keep their original iteration order.
func RankByAverage(averages []StudentAverage) []StudentAverage {
	ranked := make([]StudentAverage, len(averages))
	copy(ranked, averages)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Average > ranked[j].Average
	})
	return ranked
}

// RankByRate sorts attendance rates descending, stable on ties
func RankByRate(rates []AttendanceRate) []AttendanceRate {
	ranked := make([]AttendanceRate, len(rates))
	copy(ranked, rates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rate > ranked[j].Rate
	})
	return ranked
}

// TopAverages returns the first n ranked averages
func TopAverages(averages []StudentAverage, n int) []StudentAverage {
	ranked := RankByAverage(averages)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopRates returns the first n ranked attendance rates
func TopRates(rates []AttendanceRate, n int) []AttendanceRate {
	ranked := RankByRate(rates)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
