package utils

import (
	"log"
	"time"

	"scholarnest/database"
	"scholarnest/models"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[BLOG-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// publishDueBlogPosts promotes scheduled posts whose publish time has passed.
func publishDueBlogPosts() {
	result := database.Database.Db.Model(&models.BlogPost{}).
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?", models.BlogStatusScheduled, time.Now()).
		Update("status", models.BlogStatusPublished)
	if result.Error != nil {
		logScheduler("Error publishing scheduled posts: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Published scheduled posts")
	}
}

// StartBlogScheduler checks for due scheduled posts every minute.
func StartBlogScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("* * * * *", func() {
		publishDueBlogPosts()
	})
	c.Start()

	logScheduler("Blog publish scheduler started - runs every minute")
	return c
}
