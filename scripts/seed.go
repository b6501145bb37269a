package main

import (
	"log"
	"os"

	"kabulearn/config"
	"kabulearn/database"
	"kabulearn/models"
)

// Seeds the lesson catalogue. An existing catalogue is left alone so user
// progress survives redeploys; set FORCE_RESET=true to wipe and reseed.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var existingLessons int64
	db.Model(&models.Lesson{}).Count(&existingLessons)

	forceReset := os.Getenv("FORCE_RESET") == "true"

	if existingLessons > 0 && !forceReset {
		log.Printf("Found %d existing lessons. Skipping seed to preserve user progress.", existingLessons)
		log.Println("To force reset, set FORCE_RESET=true environment variable")
		return
	}

	if forceReset {
		log.Println("FORCE_RESET=true detected. Proceeding with full reset...")
		// Delete dependents first
		db.Unscoped().Where("1 = 1").Delete(&models.QuizAttempt{})
		db.Unscoped().Where("1 = 1").Delete(&models.ClearedQuestion{})
		db.Unscoped().Where("1 = 1").Delete(&models.Option{})
		db.Unscoped().Where("1 = 1").Delete(&models.Question{})
		db.Unscoped().Where("1 = 1").Delete(&models.Lesson{})
		log.Println("Deleted old data.")
	}

	for _, lesson := range seedLessons() {
		if err := db.Create(&lesson).Error; err != nil {
			log.Fatalf("Failed to seed lesson %s: %v", lesson.Slug, err)
		}
		log.Printf("Seeded lesson %s (chapter %d)", lesson.Slug, lesson.Chapter)
	}

	log.Println("Seeding finished.")
}

func seedLessons() []models.Lesson {
	return []models.Lesson{
		{
			Chapter:    0,
			Title:      "はじめに",
			Slug:       "stage0-1",
			Content:    "このプラットフォームでは、株式投資の基礎をステージ形式で学びます。",
			VideoID:    "",
			VideoTitle: "",
		},
		{
			Chapter:    1,
			Title:      "Stage1-1. 証券口座を開設しよう",
			Slug:       "stage1-1",
			Content:    "株式投資を始める第一歩は「証券口座」を開設することです。",
			VideoID:    "1121367493",
			VideoTitle: "証券口座を開設しよう",
			Questions: []models.Question{
				{
					Text: "国内の株式取引において、最も安い手数料はいくらでしょうか。",
					Options: []models.Option{
						{Text: "100円"},
						{Text: "0円", IsCorrect: true},
						{Text: "50円"},
						{Text: "500円"},
					},
				},
			},
		},
		{
			Chapter:    1,
			Title:      "Stage1-2. 口座開設手順を確認しよう",
			Slug:       "stage1-2",
			Content:    "証券口座開設の手続きは、申し込み、本人確認書類の提出、審査の流れで進みます。",
			VideoID:    "1121397428",
			VideoTitle: "口座開設伴走",
			Questions: []models.Question{
				{
					Text: "NISA口座の開設に関する以下の記述のうち、正しいものはどれですか？",
					Options: []models.Option{
						{Text: "証券会社と銀行で、それぞれ1つずつNISA口座を開設できる。"},
						{Text: "年間投資額が大きい人は、特例で複数のNISA口座を開設できる。"},
						{Text: "自分が開設するすべての証券会社でNISA口座を開設できる。"},
						{Text: "NISA口座はすべての金融機関を通じて1人1つしか開設できない。", IsCorrect: true},
					},
				},
			},
		},
		{
			Chapter:    2,
			Title:      "Stage2-1. 株価について学ぼう",
			Slug:       "stage2-1",
			Content:    "株価とは、株式の市場での取引価格です。需要と供給のバランスで決まります。",
			VideoID:    "1121413384",
			VideoTitle: "株価について",
			Questions: []models.Question{
				{
					Text: "株価が上がる主な要因はどれですか？",
					Options: []models.Option{
						{Text: "売りたい人が多い"},
						{Text: "買いたい人が多い", IsCorrect: true},
						{Text: "取引が停止される"},
					},
				},
			},
		},
		{
			Chapter:    999,
			Title:      "おわりに",
			Slug:       "ending-1",
			Content:    "ここまでの学習、おつかれさまでした。次は実際に少額から投資を始めてみましょう。",
			VideoID:    "",
			VideoTitle: "",
		},
	}
}
