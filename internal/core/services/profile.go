package services

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"runtime/debug"
	"strings"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// profilePath is the fixed path prefix of the identifier URL template.
const profilePath = "/profil/"

// msgProfileFetched is the outcome message of a successful fetch.
const msgProfileFetched = "public profile fetched"

// msgNoTarget is shown when neither a URL nor an identifier was entered.
const msgNoTarget = "enter a profile URL or code"

// ProfileService retrieves a page and extracts the public profile fields.
// Every call returns a ProfileOutcome; nothing is returned as an error.
type ProfileService struct {
	fetcher      driven.PageFetcher
	extractor    driven.ProfileExtractor
	baseURL      string
	logger       driven.Logger
	newRequestID func() string
}

// NewProfileService creates a new profile service.
// newRequestID may be nil, in which case outcomes carry no request id.
func NewProfileService(
	fetcher driven.PageFetcher,
	extractor driven.ProfileExtractor,
	baseURL string,
	logger driven.Logger,
	newRequestID func() string,
) *ProfileService {
	if logger == nil {
		logger = driven.NopLogger{}
	}
	if baseURL == "" {
		baseURL = domain.DefaultProfileBaseURL
	}
	return &ProfileService{
		fetcher:      fetcher,
		extractor:    extractor,
		baseURL:      strings.TrimRight(baseURL, "/"),
		logger:       logger,
		newRequestID: newRequestID,
	}
}

// Fetch retrieves a profile by URL or identifier.
func (s *ProfileService) Fetch(ctx context.Context, target string) domain.ProfileOutcome {
	target = strings.TrimSpace(target)
	if looksLikeURL(target) {
		return s.fetch(ctx, target, target)
	}
	return s.fetch(ctx, target, s.profileURL(target))
}

// FetchByID retrieves a profile through the identifier template.
func (s *ProfileService) FetchByID(ctx context.Context, id string) domain.ProfileOutcome {
	id = strings.TrimSpace(id)
	return s.fetch(ctx, id, s.profileURL(id))
}

// ProfileURL returns the templated address for an identifier.
func (s *ProfileService) ProfileURL(id string) string {
	return s.profileURL(strings.TrimSpace(id))
}

func (s *ProfileService) profileURL(id string) string {
	if id == "" {
		return ""
	}
	return s.baseURL + profilePath + url.PathEscape(id)
}

// fetch runs retrieval and extraction, converting every failure into data.
func (s *ProfileService) fetch(ctx context.Context, target, pageURL string) (out domain.ProfileOutcome) {
	if ctx == nil {
		ctx = context.Background()
	}

	var requestID string
	if s.newRequestID != nil {
		requestID = s.newRequestID()
	}
	ctx = driven.WithRequestID(ctx, requestID)
	log := s.logger.With(driven.Fields{"request_id": requestID})

	out.RequestID = requestID
	out.URL = pageURL

	defer func() {
		if r := recover(); r != nil {
			typeName := typeNameOf(r)
			log.Error("unexpected failure while fetching profile", fmt.Errorf("panic: %v", r), driven.Fields{
				"url":        pageURL,
				"error_type": typeName,
				"stack":      string(debug.Stack()),
			})
			out.Outcome = unexpectedOutcome(typeName)
			out.Profile = domain.Profile{}
		}
	}()

	if target == "" {
		log.Error("profile fetch rejected", domain.ErrInvalidInput, driven.Fields{
			"category": domain.CategoryInvalidTarget.String(),
		})
		out.Outcome = domain.Failure(domain.CategoryInvalidTarget, msgNoTarget)
		return out
	}

	if s.fetcher == nil || s.extractor == nil {
		log.Error("profile service is not wired", domain.ErrNotConfigured, nil)
		out.Outcome = unexpectedOutcome(domain.ErrNotConfigured.Error())
		return out
	}

	log.Info("fetching public profile", driven.Fields{"url": pageURL})

	page, err := s.fetcher.Get(ctx, pageURL)
	if err != nil {
		out.Outcome = s.retrievalFailure(log, pageURL, err)
		return out
	}

	profile, err := s.extractor.Extract(ctx, page)
	if err != nil {
		typeName := typeNameOf(domain.RootCause(err))
		log.Error("profile document could not be processed", err, driven.Fields{
			"url":        pageURL,
			"error_type": typeName,
		})
		out.Outcome = unexpectedOutcome(typeName)
		return out
	}

	log.Info("public profile extracted", driven.Fields{
		"url":          pageURL,
		"has_name":     profile.HasDisplayName(),
		"has_location": profile.HasLocation(),
	})

	out.Outcome = domain.Success(msgProfileFetched)
	out.Profile = profile
	return out
}

// retrievalFailure converts a fetcher error into an outcome. Classified
// failures keep their sanitised message; anything else is unexpected.
func (s *ProfileService) retrievalFailure(log driven.Logger, pageURL string, err error) domain.Outcome {
	if fe, ok := domain.AsFetchError(err); ok {
		log.Error("profile retrieval failed", nil, driven.Fields{
			"url":      pageURL,
			"category": fe.Category.String(),
			"message":  fe.Message,
		})
		return domain.Failure(fe.Category, fe.Message)
	}

	typeName := typeNameOf(domain.RootCause(err))
	log.Error("profile retrieval failed with an unclassified error", err, driven.Fields{
		"url":        pageURL,
		"error_type": typeName,
	})
	return unexpectedOutcome(typeName)
}

func unexpectedOutcome(typeName string) domain.Outcome {
	return domain.Failure(domain.CategoryUnexpected, "unexpected error: "+typeName)
}

// looksLikeURL reports whether target carries a scheme and should be
// requested as given rather than interpolated into the template.
func looksLikeURL(target string) bool {
	if !strings.Contains(target, "://") {
		return false
	}
	u, err := url.Parse(target)
	return err == nil && u.Scheme != ""
}

// typeNameOf returns the Go type name of v without its package path.
func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
