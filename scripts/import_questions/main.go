package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/internal/repositories"
	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Loads a five-question quiz from a spreadsheet and replaces the stored
// set. Expected columns on the first sheet, after a header row:
// question text, option 1..4, correct answer.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_questions <file.xlsx>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Fatal("failed to read sheet:", err)
	}

	var questions []models.Question
	for i, row := range rows {
		if i == 0 || len(row) < 6 { // skip header and short rows
			continue
		}

		ordinal := len(questions) + 1
		if ordinal > models.QuizLength {
			break
		}

		options := [models.OptionCount]string{row[1], row[2], row[3], row[4]}
		question := models.NewQuestion(ordinal, row[0], options, row[5])
		if err := question.Validate(); err != nil {
			log.Fatalf("invalid question in row %d: %v", i+1, err)
		}
		questions = append(questions, question)
	}

	if len(questions) != models.QuizLength {
		log.Fatalf("expected %d questions, found %d", models.QuizLength, len(questions))
	}

	if err := repositories.NewQuestionRepository(db).ReplaceAll(questions); err != nil {
		log.Fatal("failed to store questions:", err)
	}

	fmt.Printf("Imported %d questions from %s\n", len(questions), os.Args[1])
}
