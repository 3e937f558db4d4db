package certificate

import "strings"

const DefaultName = "Exam Participant"

// Record is everything a certificate shows.
type Record struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	IssueDate string `json:"issue_date"`
}

func FileName(name string) string {
	return "devops_certificate_" + strings.ReplaceAll(name, " ", "_") + ".pdf"
}
