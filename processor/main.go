package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"mobile-order/config"
	"mobile-order/database"
	"mobile-order/models"
	"mobile-order/services/importer"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Standalone processor: drop menu CSV files into the inbox folder and they
// get imported once, moved to the processed folder and summarized by mail.
func main() {
	config.LoadConfig()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.ImportFileLog{}); err != nil {
		log.Fatalf("Failed to migrate import file log: %v", err)
	}

	processAllCSV(db)
}

func processAllCSV(db *gorm.DB) {
	files, err := os.ReadDir(config.ImportInboxDir)
	if err != nil {
		log.Println("Failed to read inbox folder:", err)
		return
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".csv" {
			continue
		}
		filePath := filepath.Join(config.ImportInboxDir, file.Name())
		fmt.Println("Processing:", filePath)
		processFile(db, filePath)
	}
}

func processFile(db *gorm.DB, path string) {
	filename := filepath.Base(path)

	var existing models.ImportFileLog
	err := db.Where("filename = ?", filename).First(&existing).Error
	if err == nil {
		fmt.Println("Already processed, skipping:", filename)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Failed to check file log:", err)
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Println("Failed to read file:", err)
		return
	}

	imp := importer.NewImporter(importer.NewGormStore(db))
	result, err := imp.ImportCSV(string(raw))
	if err != nil {
		log.Printf("Import of %s aborted: %v", filename, err)
		sendSummaryMail(filename, nil, err)
		return
	}

	fileLog := models.ImportFileLog{
		Filename:     filename,
		DateModified: time.Now(),
		Created:      result.Created,
		Updated:      result.Updated,
		Skipped:      result.Skipped,
	}
	if err := db.Create(&fileLog).Error; err != nil {
		log.Println("Failed to record file log:", err)
		return
	}

	if err := moveToProcessed(path, filename); err != nil {
		log.Println("Failed to move file:", err)
	}

	fmt.Printf("Done %s: %d created, %d updated, %d skipped\n",
		filename, result.Created, result.Updated, result.Skipped)
	sendSummaryMail(filename, result, nil)
}

func moveToProcessed(path, filename string) error {
	if err := os.MkdirAll(config.ImportProcessedDir, 0o755); err != nil {
		return err
	}
	return os.Rename(path, filepath.Join(config.ImportProcessedDir, filename))
}

func sendSummaryMail(filename string, result *importer.Result, importErr error) {
	if config.SMTPSender == "" || config.ImportReportTo == "" {
		return
	}

	var body string
	if importErr != nil {
		body = fmt.Sprintf("Import of %s failed: %v", filename, importErr)
	} else {
		body = fmt.Sprintf("Import of %s finished.\n\nCreated: %d\nUpdated: %d\nSkipped: %d\n",
			filename, result.Created, result.Updated, result.Skipped)
		for _, rowErr := range result.Errors {
			body += fmt.Sprintf("\nRow %d: %s", rowErr.Row, rowErr.Message)
		}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.ImportReportTo)
	msg.SetHeader("Subject", "Menu import report: "+filename)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send summary mail:", err)
	}
}
