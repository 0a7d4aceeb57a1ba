package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/gin-gonic/gin"
)

// sendMail is swapped out in tests.
var sendMail = smtp.SendMail

func main() {
	var err error
	db, err = openDB(envOr("DATABASE_PATH", "portfolio.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	initVisitorTracking()
	initSectionViews()
	initAdminToken()

	r := setupRouter(loadMotionConfig(envOr("MOTION_CONFIG", "motion.yaml")))
	if err := r.Run(":" + envOr("PORT", "8080")); err != nil {
		log.Fatal(err)
	}
}

// loadMotionConfig reads the animation tuning file. A missing file falls
// back to the built-in values; an invalid one is fatal.
func loadMotionConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Motion config %s not found, using defaults", path)
		return config.Default()
	case err != nil:
		log.Fatalf("Invalid motion config: %v", err)
	}
	return cfg
}

func setupRouter(motionCfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Use(trackVisits)

	r.Static("/images", "./images")
	r.Static("/static", "./static")
	r.Static("/wasm", "./wasm")
	r.StaticFile("/resume.pdf", "./static/resume.pdf")

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{"content": siteContent})
	})

	// Content consumed by the motion layer and anything else that wants it
	r.GET("/api/content", func(c *gin.Context) {
		c.JSON(http.StatusOK, siteContent)
	})

	r.GET("/api/motion-config", func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=300")
		c.YAML(http.StatusOK, motionCfg)
	})

	// Beacon sent by the page whenever the active section changes
	r.POST("/api/section-view", func(c *gin.Context) {
		if c.GetHeader("DNT") == "1" {
			c.Status(http.StatusNoContent)
			return
		}
		var body struct {
			Section string `json:"section" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "section is required"})
			return
		}
		if !knownSection(body.Section) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown section %q", body.Section)})
			return
		}
		if err := recordSectionView(body.Section, hashIP(c.ClientIP())); err != nil {
			log.Printf("Error recording section view: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{"title": "Get in touch"})
	})

	r.POST("/contact", submitContact)

	setupAdminRoutes(r)
	return r
}

func submitContact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	fail := func(msg string) {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": msg})
	}
	if name == "" || email == "" || message == "" {
		fail("Please fill in your name, email and message.")
		return
	}
	if err := sendContactEmail(name, email, message); err != nil {
		log.Printf("Contact form delivery failed: %v", err)
		fail("Your message could not be sent right now. Please email me directly.")
		return
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": "Thanks, your message is on its way."})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sendContactEmail(name, email, message string) error {
	host := envOr("SMTP_HOST", "smtp.gmail.com")
	port := envOr("SMTP_PORT", "587")
	user, pass := os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")
	to := envOr("TO_EMAIL", siteContent.Email)
	if user == "" || pass == "" {
		return errors.New("smtp credentials not configured")
	}
	// Name and email are copied into headers.
	if strings.ContainsAny(name+email, "\r\n") {
		return errors.New("invalid characters in name or email")
	}

	var msg strings.Builder
	for _, h := range [][2]string{
		{"To", to},
		{"From", user},
		{"Reply-To", email},
		{"Subject", "Portfolio message from " + name},
	} {
		fmt.Fprintf(&msg, "%s: %s\r\n", h[0], h[1])
	}
	fmt.Fprintf(&msg, "\r\n%s <%s> wrote:\r\n\r\n%s\r\n", name, email, message)

	auth := smtp.PlainAuth("", user, pass, host)
	if err := sendMail(host+":"+port, auth, user, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail via %s: %w", host, err)
	}
	log.Printf("Contact message delivered for %s", hashIP(email))
	return nil
}
