package jobs

import (
	"net/url"
	"strings"
)

// Platform is a job board or applicant tracking system a posting came from.
type Platform string

// Known platforms
const (
	PlatformGreenhouse Platform = "Greenhouse"
	PlatformLever      Platform = "Lever"
	PlatformWorkday    Platform = "Workday"
	PlatformLinkedIn   Platform = "LinkedIn"
	PlatformIndeed     Platform = "Indeed"
	PlatformUnknown    Platform = ""
)

// DefaultSource labels postings whose platform is unknown.
const DefaultSource = "Job Board"

// DetectPlatform identifies the platform from a posting URL.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "indeed.com"):
		return PlatformIndeed
	default:
		return PlatformUnknown
	}
}

// Source is the label stored on the job.
func (p Platform) Source() string {
	if p == PlatformUnknown {
		return DefaultSource
	}
	return string(p)
}

// contentSelectors returns where the posting body usually lives, most
// specific first.
func contentSelectors(p Platform) []string {
	var specific []string
	switch p {
	case PlatformGreenhouse:
		specific = []string{".job__description.body", ".job__description", "#content"}
	case PlatformLever:
		specific = []string{".posting-page", ".posting-description", ".content"}
	case PlatformWorkday:
		specific = []string{"[data-automation-id='jobDescription']", ".job-description"}
	case PlatformLinkedIn:
		specific = []string{".show-more-less-html__markup", ".description__text"}
	case PlatformIndeed:
		specific = []string{"#jobDescriptionText"}
	}
	return append(specific, ".job-description", "[class*='description']", "main", "article", "#content", "body")
}

// noiseSelectors lists elements that never belong to a posting.
func noiseSelectors(p Platform) []string {
	common := []string{
		"script", "style", "noscript", "nav", "footer", "form",
		".application-form", "#application-form", ".apply-button-container",
		".eeo-statement", ".voluntary-disclosure", ".cookie-banner", ".social-share",
	}
	switch p {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", ".post-apply")
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']")
	default:
		return common
	}
}
