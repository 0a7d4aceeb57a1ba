// admin.go - privacy-conscious analytics and admin dashboard
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// VisitorMetric is one tracked page request. The IP is stored hashed.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type AdminStats struct {
	TotalVisitors     int64           `json:"total_visitors"`
	UniqueVisitors    int64           `json:"unique_visitors"`
	TotalSectionViews int64           `json:"total_section_views"`
	TopSections       []SectionStat   `json:"top_sections"`
	RecentVisitors    []VisitorMetric `json:"recent_visitors"`
	VisitorsToday     int64           `json:"visitors_today"`
	VisitorsThisWeek  int64           `json:"visitors_this_week"`
}

const sessionCookie = "admin_session"

// Both are regenerated on every start, so restarts log the admin out and
// hashes cannot be joined across runs.
var (
	adminToken  string
	hashingSalt string
)

func initAdminToken() {
	adminToken = randomHex(32)
	hashingSalt = randomHex(32)

	log.Println("Admin dashboard: /admin/login")
	if gin.IsDebugging() {
		log.Printf("Admin session token (debug mode): %s", adminToken)
	}
	log.Println("Privacy: visitors and section views are stored with hashed IPs only")
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to read random bytes: %v", err)
	}
	return hex.EncodeToString(buf)
}

// hashIP is consistent per IP for the lifetime of the process.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

func requireAdmin(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}

// trackVisits records page views of the site itself. Assets, API calls and
// admin pages are not visits.
func trackVisits(c *gin.Context) {
	if c.Request.URL.Path == "/" && c.GetHeader("DNT") != "1" {
		trackVisitor(hashIP(c.ClientIP()), c.GetHeader("User-Agent"), c.Request.URL.Path)
	}
	c.Next()
}

func trackVisitor(hashedIP, userAgent, path string) {
	_, err := db.Exec(`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, time.Now().UTC())
	if err != nil {
		log.Printf("Error tracking visit to %s: %v", path, err)
	}
}

func initVisitorTracking() {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS visitors (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip  TEXT NOT NULL,
		user_agent TEXT,
		path       TEXT,
		timestamp  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		log.Fatalf("Failed to create visitors table: %v", err)
	}

	go cleanupOldData(db)
	log.Println("Visitor tracking ready")
}

// cleanupOldData drops analytics older than twelve months.
func cleanupOldData(d *sql.DB) {
	for _, table := range []string{"visitors", "section_views"} {
		result, err := d.Exec(`DELETE FROM ` + table + ` WHERE timestamp < datetime('now', '-12 months')`)
		if err != nil {
			if !strings.Contains(err.Error(), "no such table") {
				log.Printf("Error cleaning up %s: %v", table, err)
			}
			continue
		}
		if n, _ := result.RowsAffected(); n > 0 {
			log.Printf("Privacy cleanup: removed %d %s rows older than 12 months", n, table)
		}
	}
}

func loadAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		query string
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM section_views`, &stats.TotalSectionViews},
		{`SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`, &stats.VisitorsThisWeek},
	}
	for _, q := range counts {
		if err := db.QueryRow(q.query).Scan(q.dst); err != nil {
			return nil, err
		}
	}

	top, err := sectionStats()
	if err != nil {
		return nil, err
	}
	stats.TopSections = top

	recent, err := recentVisitors(50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

func recentVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy"})
	})
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin"})
	})
	r.POST("/admin/login", adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		setSession(c, "", -1)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", requireAdmin)
	admin.GET("/dashboard", adminDashboard)
	admin.GET("/api/stats", adminStatsJSON)
	admin.GET("/export/stats", adminExport)
	admin.GET("/sections", adminSections)
	admin.DELETE("/sections/:section", adminResetSection)
	admin.GET("/visitors", adminVisitors)
	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		go cleanupOldData(db)
		c.JSON(http.StatusAccepted, gin.H{"message": "Cleanup started"})
	})
}

func setSession(c *gin.Context, value string, maxAge int) {
	c.SetCookie(sessionCookie, value, maxAge, "/admin", "", false, true)
}

func adminError(c *gin.Context, msg string, err error) {
	log.Printf("Admin: %s: %v", strings.ToLower(msg), err)
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": msg})
}

func adminLogin(c *gin.Context) {
	wantUser, wantPass := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")
	if wantUser == "" || wantPass == "" {
		log.Println("Admin login refused: ADMIN_USERNAME and ADMIN_PASSWORD are not set")
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Admin login is disabled"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(c.PostForm("username")), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.PostForm("password")), []byte(wantPass)) == 1
	if !userOK || !passOK {
		log.Printf("Rejected admin login from %s", hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Wrong username or password"})
		return
	}
	setSession(c, adminToken, 24*60*60)
	log.Printf("Admin logged in from %s", hashIP(c.ClientIP()))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func adminDashboard(c *gin.Context) {
	stats, err := loadAdminStats()
	if err != nil {
		adminError(c, "Could not load statistics", err)
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
}

func adminStatsJSON(c *gin.Context) {
	stats, err := loadAdminStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func adminExport(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
	log.Printf("Stats exported by %s", hashIP(c.ClientIP()))
	adminStatsJSON(c)
}

func adminSections(c *gin.Context) {
	sections, err := sectionStats()
	if err != nil {
		adminError(c, "Could not load section views", err)
		return
	}
	c.HTML(http.StatusOK, "admin-sections.html", gin.H{"sections": sections})
}

func adminResetSection(c *gin.Context) {
	section := c.Param("section")
	n, err := resetSection(section)
	switch {
	case err != nil:
		log.Printf("Error resetting section %s: %v", section, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset section"})
	case n == 0:
		c.JSON(http.StatusNotFound, gin.H{"error": "No views recorded for section"})
	default:
		log.Printf("Section %s reset by %s", section, hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Section views reset", "deleted": n})
	}
}

func adminVisitors(c *gin.Context) {
	visitors, err := recentVisitors(200)
	if err != nil {
		adminError(c, "Could not load visitors", err)
		return
	}
	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
}
