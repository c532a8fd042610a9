package filter

import (
	"strings"

	"go-medtech-job-alerts/internal/model"
	"go-medtech-job-alerts/internal/textnorm"
)

// Scoring weights. Baseline is 0 and nothing clamps the result: the score
// only orders listings inside the digest, it never drops one.
const (
	knownCompanyBonus = 25
	highKeywordBonus  = 10
	medKeywordBonus   = 5
	titleBoost        = 15
	staffingPenalty   = 20
	maxKeywordHits    = 3
)

var highRelevanceKeywords = []string{
	"associate", "entry level", "entry-level", "junior", "trainee", "new grad",
	"medical device", "med device", "surgical", "clinical sales",
	"orthopedic", "orthopaedic", "endoscopy", "cardiovascular",
	"spine", "trauma", "implant",
}

var medRelevanceKeywords = []string{
	"medical sales", "clinical", "healthcare sales", "hospital",
	"territory", "field sales",
}

var titleBoostKeywords = []string{"associate", "entry", "junior", "new grad"}

// Companies whose name contains one of these are usually intermediaries,
// not the device maker itself.
var staffingIndicators = []string{"staffing", "recruiting", "placement"}

// Phrases that give an agency posting away even when the poster name looks
// clean.
var agencyPhrases = []string{
	"staffing agency", "recruiting firm", "placement firm", "executive search",
}

var knownAgencies = []string{
	"aerotek", "actalent", "kforce", "robert half", "insight global",
	"adecco", "randstad",
}

// RelevancyScore rates a listing for entry-level med-device sales fit.
// Higher = better; staffing-agency postings can go negative.
func RelevancyScore(listing model.Listing) int {
	title := strings.ToLower(listing.Title)
	company := textnorm.Fold(listing.Company)
	text := textnorm.Fold(listing.Title + " " + listing.Company + " " + listing.Description)

	score := 0

	//keyword hits, capped so repeats don't dominate (+10/+5 each)
	score += countHits(text, highRelevanceKeywords) * highKeywordBonus
	score += countHits(text, medRelevanceKeywords) * medKeywordBonus

	//entry-level words in the title specifically (+15)
	for _, kw := range titleBoostKeywords {
		if strings.Contains(title, kw) {
			score += titleBoost
			break
		}
	}

	//smells like a staffing/recruiting farm (-20)
	if isStaffingAgency(company, text) {
		score -= staffingPenalty
	}

	//well-known med device / medtech companies (+25)
	for _, co := range knownCompanies {
		if strings.Contains(company, co) {
			score += knownCompanyBonus
			break
		}
	}

	return score
}

func countHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
			if hits == maxKeywordHits {
				break
			}
		}
	}
	return hits
}

func isStaffingAgency(company, text string) bool {
	for _, indicator := range staffingIndicators {
		if strings.Contains(company, indicator) {
			return true
		}
	}
	for _, phrase := range agencyPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	for _, agency := range knownAgencies {
		if strings.Contains(company, agency) {
			return true
		}
	}
	return false
}
