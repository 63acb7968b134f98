package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"formadmin/config"
	"formadmin/database"
	catalogModels "formadmin/models/catalog"
	"formadmin/services/duration"
)

// Imports a course catalog export. Expected columns:
// formation_code, formation_title, module_title, chapter_title, course_title, duration_minutes, order_index
//
// Containers are created on first sight and deduplicated by title within
// their parent. Stored container durations are rebuilt at the end with a
// full bottom-up synchronization.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	formations := make(map[string]*catalogModels.Formation)
	modules := make(map[string]*catalogModels.Module)
	chapters := make(map[string]*catalogModels.Chapter)

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%500 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		formationCode := getField(row, headerIndex, "formation_code")
		formationTitle := getField(row, headerIndex, "formation_title")
		moduleTitle := getField(row, headerIndex, "module_title")
		chapterTitle := getField(row, headerIndex, "chapter_title")
		courseTitle := getField(row, headerIndex, "course_title")

		if formationCode == "" || courseTitle == "" {
			skipped++
			continue
		}

		formation, ok := formations[formationCode]
		if !ok {
			formation = &catalogModels.Formation{Title: formationTitle, Code: formationCode, IsActive: true}
			var existing catalogModels.Formation
			if err := database.Database.Db.Where("code = ? AND is_deleted = ?", formationCode, false).First(&existing).Error; err == nil {
				*formation = existing
			} else if err := database.Database.Db.Create(formation).Error; err != nil {
				log.Printf("Error inserting formation %s: %v", formationCode, err)
				skipped++
				continue
			}
			formations[formationCode] = formation
		}

		moduleKey := formationCode + "/" + moduleTitle
		module, ok := modules[moduleKey]
		if !ok {
			module = &catalogModels.Module{FormationID: formation.ID, Title: moduleTitle, IsActive: true}
			var existing catalogModels.Module
			if err := database.Database.Db.Where("formation_id = ? AND title = ? AND is_deleted = ?", formation.ID, moduleTitle, false).First(&existing).Error; err == nil {
				*module = existing
			} else if err := database.Database.Db.Create(module).Error; err != nil {
				log.Printf("Error inserting module %s: %v", moduleTitle, err)
				skipped++
				continue
			}
			modules[moduleKey] = module
		}

		chapterKey := moduleKey + "/" + chapterTitle
		chapter, ok := chapters[chapterKey]
		if !ok {
			chapter = &catalogModels.Chapter{ModuleID: module.ID, Title: chapterTitle, IsActive: true}
			var existing catalogModels.Chapter
			if err := database.Database.Db.Where("module_id = ? AND title = ? AND is_deleted = ?", module.ID, chapterTitle, false).First(&existing).Error; err == nil {
				*chapter = existing
			} else if err := database.Database.Db.Create(chapter).Error; err != nil {
				log.Printf("Error inserting chapter %s: %v", chapterTitle, err)
				skipped++
				continue
			}
			chapters[chapterKey] = chapter
		}

		course := catalogModels.Course{
			ChapterID:       chapter.ID,
			Title:           courseTitle,
			OrderIndex:      parseInt(getField(row, headerIndex, "order_index")),
			DurationMinutes: parseInt(getField(row, headerIndex, "duration_minutes")),
			IsActive:        true,
		}

		var existing catalogModels.Course
		result := database.Database.Db.Where("chapter_id = ? AND title = ? AND is_deleted = ?", chapter.ID, courseTitle, false).First(&existing)
		if result.Error != nil {
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %s: %v", courseTitle, err)
				skipped++
				continue
			}
			inserted++
		} else {
			existing.OrderIndex = course.OrderIndex
			existing.DurationMinutes = course.DurationMinutes
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %s: %v", courseTitle, err)
				skipped++
				continue
			}
		}
	}

	// Recompute container durations from the freshly imported leaves
	service := duration.NewService(duration.NewGormStore(database.Database.Db))
	syncResult, err := service.SyncAll(duration.LevelAll, 0)
	if err != nil {
		log.Fatalf("Duration synchronization failed: %v", err)
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Courses inserted: %d", inserted)
	log.Printf("Rows skipped: %d", skipped)
	log.Printf("Durations synced: %d nodes, %d errors", syncResult.Synced, len(syncResult.Errors))
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
