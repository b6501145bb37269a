package progress

import (
	"fmt"
	"math"
	"sort"

	"kabulearn/models"
)

// chapterTitles maps a chapter number to its display title. Chapters
// outside this table get a generated "Stage N" label.
var chapterTitles = map[int]string{
	0:   "はじめに",
	1:   "証券口座を開設しよう",
	2:   "株価について知ろう",
	3:   "投資戦略を学ぼう",
	4:   "NISAについて知ろう",
	5:   "投資信託について知ろう",
	999: "おわりに",
}

// ChapterTitle resolves the display title for a chapter number.
func ChapterTitle(chapter int) string {
	if title, ok := chapterTitles[chapter]; ok {
		return title
	}
	return fmt.Sprintf("Stage %d", chapter)
}

// ChapterView is the per-chapter aggregate shown on the top page.
type ChapterView struct {
	Chapter            int             `json:"chapter"`
	Title              string          `json:"title"`
	Lessons            []models.Lesson `json:"lessons"`
	TotalQuestions     int             `json:"total_questions"`
	ClearedQuestions   int             `json:"cleared_questions"`
	ProgressPercentage int             `json:"progress_percentage"`
}

// BuildChapterView groups lessons by chapter number and computes each
// chapter's completion from the cleared-question set. Chapters come out in
// ascending chapter-number order regardless of input order. A chapter with
// no questions has 0% progress, never a division by zero.
func BuildChapterView(lessons []models.Lesson, clearedQuestionIDs map[uint]struct{}) []ChapterView {
	byChapter := make(map[int]*ChapterView)
	order := make([]int, 0)

	for _, lesson := range lessons {
		view, ok := byChapter[lesson.Chapter]
		if !ok {
			view = &ChapterView{
				Chapter: lesson.Chapter,
				Title:   ChapterTitle(lesson.Chapter),
			}
			byChapter[lesson.Chapter] = view
			order = append(order, lesson.Chapter)
		}

		view.Lessons = append(view.Lessons, lesson)
		view.TotalQuestions += len(lesson.Questions)
		for _, question := range lesson.Questions {
			if _, cleared := clearedQuestionIDs[question.ID]; cleared {
				view.ClearedQuestions++
			}
		}
	}

	sort.Ints(order)

	views := make([]ChapterView, 0, len(order))
	for _, chapter := range order {
		view := byChapter[chapter]
		view.ProgressPercentage = percentage(view.ClearedQuestions, view.TotalQuestions)
		views = append(views, *view)
	}
	return views
}

// OverallPercentage computes completion across every question of every
// lesson, counting only cleared ids that belong to that universe.
func OverallPercentage(lessons []models.Lesson, clearedQuestionIDs map[uint]struct{}) int {
	total := 0
	cleared := 0
	for _, lesson := range lessons {
		for _, question := range lesson.Questions {
			total++
			if _, ok := clearedQuestionIDs[question.ID]; ok {
				cleared++
			}
		}
	}
	return percentage(cleared, total)
}

func percentage(cleared, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(cleared) / float64(total) * 100))
}
