package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// openDB opens the sqlite file at path. Times are stored in sqlite's own
// text format so date() and datetime() work on them.
func openDB(path string) (*sql.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_time_format=sqlite"
	}
	d, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	d.SetMaxOpenConns(1)
	if err := d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return d, nil
}

func initSectionViews() {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS section_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		section TEXT NOT NULL,
		hashed_ip TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		log.Fatal("Failed to create section_views table:", err)
	}
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_section_views_section ON section_views(section)`)
}

func recordSectionView(section, hashedIP string) error {
	_, err := db.Exec(`
		INSERT INTO section_views (section, hashed_ip, timestamp)
		VALUES (?, ?, ?)
	`, section, hashedIP, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record section view: %w", err)
	}
	return nil
}

// SectionStat is the view count of one page section.
type SectionStat struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
	Unique  int64  `json:"unique"`
}

func sectionStats() ([]SectionStat, error) {
	rows, err := db.Query(`
		SELECT section, COUNT(*), COUNT(DISTINCT hashed_ip)
		FROM section_views
		GROUP BY section
		ORDER BY COUNT(*) DESC, section
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []SectionStat
	for rows.Next() {
		var s SectionStat
		if err := rows.Scan(&s.Section, &s.Views, &s.Unique); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// resetSection deletes the recorded views of one section.
func resetSection(section string) (int64, error) {
	res, err := db.Exec(`DELETE FROM section_views WHERE section = ?`, section)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
