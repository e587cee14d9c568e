package services

import (
	"sort"
	"strings"

	"github.com/anjiri1684/tutor_crm/models"
)

// Default page sizes for the two list views. Callers may override them with
// the per_page query parameter.
const (
	StudentsPerPage = 8
	LessonsPerPage  = 6
)

// Student list filter values for the regular/not-regular dropdown.
const (
	RegularFilterAll        = "all"
	RegularFilterRegular    = "regular"
	RegularFilterNotRegular = "not_regular"
)

type StudentFilters struct {
	Search  string
	Regular string
}

// LessonFilters combines with logical AND. TeacherID and StudentID are
// single-value equality filters for the admin view; an empty value matches
// every lesson, the same way an empty set does.
type LessonFilters struct {
	Search          string
	TeacherID       string
	StudentID       string
	Types           []string
	Statuses        []string
	PaymentStatuses []string
}

// ParseSet splits a comma-separated query value into its members. An empty
// value yields an empty set, which every filter treats as "match all".
func ParseSet(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func FilterStudents(students []models.Student, f StudentFilters) []models.Student {
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if !matchesSearch(f.Search, s.Username, s.FullName) {
			continue
		}
		if !matchesRegular(f.Regular, s.IsRegular) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func FilterLessons(lessons []models.Lesson, f LessonFilters) []models.Lesson {
	out := make([]models.Lesson, 0, len(lessons))
	for _, l := range lessons {
		var username, fullName string
		if l.Student != nil {
			username = l.Student.Username
			fullName = l.Student.FullName
		}
		if !matchesSearch(f.Search, username, fullName) {
			continue
		}
		if f.TeacherID != "" && l.TeacherID != f.TeacherID {
			continue
		}
		if f.StudentID != "" && (l.StudentID == nil || l.StudentID.String() != f.StudentID) {
			continue
		}
		if !matchesSet(f.Types, l.Type) {
			continue
		}
		if !matchesSet(f.Statuses, l.Status) {
			continue
		}
		if !matchesSet(f.PaymentStatuses, l.PaymentStatus) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SortLessonsByTimeSlot orders lessons from earliest to latest. Unscheduled
// lessons (nil time_slot) sort after every scheduled one.
func SortLessonsByTimeSlot(lessons []models.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		a, b := lessons[i].TimeSlot, lessons[j].TimeSlot
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// Paginate returns the 1-based page of the given size. Pages past the end of
// the collection come back empty rather than failing.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func TotalPages(total, perPage int) int {
	if perPage < 1 || total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func matchesSearch(query string, username, fullName string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(username), q) ||
		strings.Contains(strings.ToLower(fullName), q)
}

func matchesRegular(filter string, isRegular bool) bool {
	switch filter {
	case "", RegularFilterAll:
		return true
	case RegularFilterRegular:
		return isRegular
	case RegularFilterNotRegular:
		return !isRegular
	default:
		return true
	}
}

func matchesSet(set []string, value *string) bool {
	if len(set) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	for _, v := range set {
		if v == *value {
			return true
		}
	}
	return false
}
