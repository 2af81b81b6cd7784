package fetch

import (
	"net/url"
	"strings"
)

// Platform is a job board whose markup we know.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

type platformProfile struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platformProfiles = []platformProfile{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
	},
	{
		platform: PlatformAshby,
		hosts:    []string{"ashbyhq.com"},
		content:  []string{".ashby-job-posting-description", "._descriptionText", "main"},
	},
}

// commonNoise is stripped from every job page before extraction.
var commonNoise = []string{
	"form", "#application-form", ".application-form", ".apply-button-container",
	".eeo-statement", ".eeo-section", ".legal-disclosure", ".self-identification",
	".social-share", ".share-buttons", ".cookie-consent", ".gdpr-notice",
}

// DetectPlatform identifies the job board from a URL host.
func DetectPlatform(rawURL string) Platform {
	if p := profileFor(rawURL); p != nil {
		return p.platform
	}
	return PlatformUnknown
}

// ContentSelectors returns the selectors tried, in order, for a platform's main text.
func ContentSelectors(platform Platform) []string {
	for _, p := range platformProfiles {
		if p.platform == platform {
			return p.content
		}
	}
	return JobPostingSelectors()
}

// NoiseSelectors returns the elements removed before extraction on a platform.
func NoiseSelectors(platform Platform) []string {
	out := append([]string(nil), commonNoise...)
	for _, p := range platformProfiles {
		if p.platform == platform {
			out = append(out, p.noise...)
		}
	}
	return out
}

func profileFor(rawURL string) *platformProfile {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	host := strings.ToLower(parsed.Hostname())
	for i := range platformProfiles {
		for _, h := range platformProfiles[i].hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return &platformProfiles[i]
			}
		}
	}
	return nil
}
