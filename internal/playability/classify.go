// Package playability turns the status/reason signals the platform
// attaches to unplayable content into a closed failure taxonomy.
package playability

import (
	"fmt"
	"strings"
)

// Category is the closed set of reasons content can be unavailable.
type Category int

const (
	// Unclassified carries reason text the table does not recognize.
	// Unknown wording is passed through, never coerced to a known
	// category, so callers can tell "gone" from "wording changed".
	Unclassified Category = iota
	NotFound
	Private
	GeoRestricted
	AgeRestricted
	PurchaseRequired
	CommunityGuideline
	TermsOfService
	AccountTerminated
	RemovedByUploader
	CopyrightClaim
	Unviewable
)

func (c Category) String() string {
	switch c {
	case NotFound:
		return "not found"
	case Private:
		return "private"
	case GeoRestricted:
		return "geo restricted"
	case AgeRestricted:
		return "age restricted"
	case PurchaseRequired:
		return "purchase required"
	case CommunityGuideline:
		return "community guideline violation"
	case TermsOfService:
		return "terms of service violation"
	case AccountTerminated:
		return "account terminated"
	case RemovedByUploader:
		return "removed by uploader"
	case CopyrightClaim:
		return "copyright claim"
	case Unviewable:
		return "unviewable"
	}
	return "unclassified"
}

// Status is one classified upstream failure signal.
type Status struct {
	Code     string // upstream status code, e.g. "ERROR", "LOGIN_REQUIRED"
	Category Category
	Claimant string // set for CopyrightClaim
	Raw      string // original reason text, set for Unclassified
}

// Error wraps a Status as a typed error for the orchestrator. Domain
// failures are never retried: availability does not change on retry.
type Error struct {
	Status Status
}

func (e *Error) Error() string {
	if e.Status.Category == Unclassified {
		return fmt.Sprintf("playability: unclassified reason %q (status %s)", e.Status.Raw, e.Status.Code)
	}
	if e.Status.Category == CopyrightClaim {
		return fmt.Sprintf("playability: copyright claim by %q", e.Status.Claimant)
	}
	return "playability: " + e.Status.Category.String()
}

// EmbedResolvable reports whether the gate may be unlocked by retrying
// the same call with the embed-capable client context.
func (s Status) EmbedResolvable() bool {
	if s.Category == AgeRestricted {
		return true
	}
	switch s.Code {
	case "AGE_VERIFICATION_REQUIRED", "AGE_CHECK_REQUIRED":
		return true
	}
	return false
}

// template matches a reason either exactly or by prefix/suffix; the
// text between prefix and suffix becomes the extracted field.
type template struct {
	exact    string
	prefix   string
	suffix   string
	category Category
}

// The table is ordered; the first match wins.
var templates = []template{
	{exact: "Video unavailable", category: NotFound},
	{exact: "This video is unavailable", category: NotFound},
	{exact: "This video isn't available anymore", category: NotFound},
	{exact: "This video is private", category: Private},
	{exact: "This video is private.", category: Private},
	{exact: "The uploader has not made this video available in your country", category: GeoRestricted},
	{exact: "This video is not available in your country", category: GeoRestricted},
	{exact: "Sign in to confirm your age", category: AgeRestricted},
	{exact: "This video may be inappropriate for some users.", category: AgeRestricted},
	{exact: "This video requires payment to watch.", category: PurchaseRequired},
	{prefix: "This video has been removed for violating YouTube's Community Guidelines", category: CommunityGuideline},
	{prefix: "This video has been removed for violating YouTube's Terms of Service", category: TermsOfService},
	{exact: "This video is no longer available because the YouTube account associated with this video has been terminated.", category: AccountTerminated},
	{exact: "This video has been removed by the uploader", category: RemovedByUploader},
	{prefix: "This video is no longer available due to a copyright claim by ", category: CopyrightClaim},
	{exact: "This video is unavailable on this device.", category: Unviewable},
}

// Classify maps an upstream failure signal onto the taxonomy. The
// upstream is inconsistent about sending a status code, a reason, or
// both; the reason text drives classification and the code breaks ties
// when the reason is absent.
func Classify(code, reason string) Status {
	reason = strings.TrimSpace(reason)

	for _, t := range templates {
		if t.exact != "" {
			if reason == t.exact {
				return Status{Code: code, Category: t.category}
			}
			continue
		}
		if strings.HasPrefix(reason, t.prefix) && strings.HasSuffix(reason, t.suffix) {
			s := Status{Code: code, Category: t.category}
			if t.category == CopyrightClaim {
				claimant := strings.TrimPrefix(reason, t.prefix)
				claimant = strings.TrimSuffix(claimant, t.suffix)
				s.Claimant = strings.TrimSuffix(claimant, ".")
			}
			return s
		}
	}

	if reason == "" {
		switch code {
		case "AGE_VERIFICATION_REQUIRED", "AGE_CHECK_REQUIRED":
			return Status{Code: code, Category: AgeRestricted}
		}
	}
	return Status{Code: code, Category: Unclassified, Raw: reason}
}
